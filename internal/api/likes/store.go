package likes

import (
	"context"

	"portfolio-api/internal/apperror"
	"portfolio-api/internal/domain/engagement"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store keeps one row per (artwork, identity) like.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func artworkLikes(db *gorm.DB, artworkID int64) *gorm.DB {
	return db.Model(&engagement.Like{}).Where("artwork_id = ?", artworkID)
}

func pairLikes(db *gorm.DB, artworkID int64, identity string) *gorm.DB {
	return db.Model(&engagement.Like{}).
		Where("artwork_id = ? AND user_identifier = ?", artworkID, identity)
}

func (s *Store) Count(ctx context.Context, artworkID int64) (int64, error) {
	var n int64
	if err := artworkLikes(s.db.WithContext(ctx), artworkID).Count(&n).Error; err != nil {
		return 0, apperror.Storage("count likes", err)
	}
	return n, nil
}

func (s *Store) IsLiked(ctx context.Context, artworkID int64, identity string) (bool, error) {
	var n int64
	if err := pairLikes(s.db.WithContext(ctx), artworkID, identity).Count(&n).Error; err != nil {
		return false, apperror.Storage("check liked", err)
	}
	return n > 0, nil
}

// Toggle flips the pair's membership and returns the new state with a fresh
// count. The delete doubles as the existence check; a concurrent insert of
// the same pair is absorbed by the unique index rather than failing.
func (s *Store) Toggle(ctx context.Context, artworkID int64, identity string) (engagement.ToggleResult, error) {
	var out engagement.ToggleResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("artwork_id = ? AND user_identifier = ?", artworkID, identity).
			Delete(&engagement.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			like := engagement.Like{ArtworkID: artworkID, UserIdentifier: identity}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			out.Liked = true
		}

		return artworkLikes(tx, artworkID).Count(&out.Likes).Error
	})
	if err != nil {
		return engagement.ToggleResult{}, apperror.Storage("toggle like", err)
	}
	return out, nil
}
