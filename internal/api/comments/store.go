package comments

import (
	"context"
	"time"

	"portfolio-api/internal/apperror"
	"portfolio-api/internal/domain/engagement"

	"gorm.io/gorm"
)

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// ListApproved returns the artwork's visible comments, newest first.
func (s *Store) ListApproved(ctx context.Context, artworkID int64) ([]engagement.PublicComment, error) {
	out := []engagement.PublicComment{}
	if err := approvedQuery(s.db.WithContext(ctx), artworkID).Scan(&out).Error; err != nil {
		return nil, apperror.Storage("list comments", err)
	}
	return out, nil
}

// Add validates and publishes a comment, returning the stored row.
func (s *Store) Add(ctx context.Context, in engagement.NewComment) (engagement.PublicComment, error) {
	if err := in.Validate(); err != nil {
		return engagement.PublicComment{}, err
	}

	row := engagement.Comment{
		ArtworkID:   in.ArtworkID,
		AuthorName:  in.Name,
		CommentText: in.Text,
		IsApproved:  true,
		CreatedAt:   s.now().UTC(),
	}
	if in.Email != "" {
		email := in.Email
		row.AuthorEmail = &email
	}

	var out engagement.PublicComment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return publicByID(tx, row.ID).Scan(&out).Error
	})
	if err != nil {
		return engagement.PublicComment{}, apperror.Storage("add comment", err)
	}
	return out, nil
}

// Delete removes a comment by id. Deleting a missing id succeeds.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&engagement.Comment{}).Error; err != nil {
		return apperror.Storage("delete comment", err)
	}
	return nil
}
