package comments

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/apperror"
	"portfolio-api/internal/domain/engagement"
	"portfolio-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(testdb.New(t))
}

func TestAddValidationBoundaries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      engagement.NewComment
		wantErr bool
	}{
		{"name at limit", engagement.NewComment{Name: strings.Repeat("a", 100), Text: "ok"}, false},
		{"name over limit", engagement.NewComment{Name: strings.Repeat("a", 101), Text: "ok"}, true},
		{"text at limit", engagement.NewComment{Name: "Ada", Text: strings.Repeat("b", 1000)}, false},
		{"text over limit", engagement.NewComment{Name: "Ada", Text: strings.Repeat("b", 1001)}, true},
		{"multibyte name at limit", engagement.NewComment{Name: strings.Repeat("é", 100), Text: "ok"}, false},
		{"empty name", engagement.NewComment{Name: "", Text: "ok"}, true},
		{"empty text", engagement.NewComment{Name: "Ada", Text: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.ArtworkID = 1
			_, err := s.Add(ctx, tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddIsImmediatelyVisible(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, engagement.NewComment{ArtworkID: 7, Name: "Ada", Email: "ada@example.com", Text: "Lovely piece"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ada", created.AuthorName)
	assert.Equal(t, "Lovely piece", created.CommentText)
	assert.False(t, created.CreatedAt.IsZero())

	list, err := s.ListApproved(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	var stored engagement.Comment
	require.NoError(t, s.db.First(&stored, created.ID).Error)
	require.NotNil(t, stored.AuthorEmail)
	assert.Equal(t, "ada@example.com", *stored.AuthorEmail)
	assert.True(t, stored.IsApproved)
}

func TestListApprovedOrderingAndFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i, text := range []string{"t1", "t2", "t3"} {
		at := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return at }
		c, err := s.Add(ctx, engagement.NewComment{ArtworkID: 4, Name: "n", Text: text})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	_, err := s.Add(ctx, engagement.NewComment{ArtworkID: 5, Name: "n", Text: "elsewhere"})
	require.NoError(t, err)

	hidden, err := s.Add(ctx, engagement.NewComment{ArtworkID: 4, Name: "n", Text: "hidden"})
	require.NoError(t, err)
	require.NoError(t, s.db.Model(&engagement.Comment{}).Where("id = ?", hidden.ID).Update("is_approved", false).Error)

	list, err := s.ListApproved(ctx, 4)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"t3", "t2", "t1"}, []string{list[0].CommentText, list[1].CommentText, list[2].CommentText})
	assert.Equal(t, ids[2], list[0].ID)
}

func TestListApprovedEmptyIsNotNil(t *testing.T) {
	s := newTestStore(t)
	list, err := s.ListApproved(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.Add(ctx, engagement.NewComment{ArtworkID: 2, Name: "Ada", Text: "hi"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, int64(c.ID)))
	require.NoError(t, s.Delete(ctx, int64(c.ID)))
	require.NoError(t, s.Delete(ctx, 123456))

	list, err := s.ListApproved(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}
