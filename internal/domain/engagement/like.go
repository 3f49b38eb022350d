package engagement

import "time"

// Like marks that one visitor identity likes one artwork.
// The (artwork_id, user_identifier) pair is unique at the storage layer.
type Like struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ArtworkID      int64  `gorm:"not null;uniqueIndex:idx_likes_artwork_user,priority:1;index" json:"artwork_id"`
	UserIdentifier string `gorm:"type:varchar(255);not null;uniqueIndex:idx_likes_artwork_user,priority:2" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }

// ToggleResult is the state after a toggle plus the fresh aggregate.
type ToggleResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
