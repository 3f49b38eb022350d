package comments

import (
	"portfolio-api/internal/domain/engagement"

	"gorm.io/gorm"
)

// approvedQuery selects the public projection of visible comments, newest
// first. id breaks ties between equal timestamps.
func approvedQuery(db *gorm.DB, artworkID int64) *gorm.DB {
	return db.Model(&engagement.Comment{}).
		Select(engagement.PublicColumns).
		Where("artwork_id = ? AND is_approved = ?", artworkID, true).
		Order("created_at DESC, id DESC")
}

func publicByID(db *gorm.DB, id uint) *gorm.DB {
	return db.Model(&engagement.Comment{}).
		Select(engagement.PublicColumns).
		Where("id = ?", id)
}
