package engagement

import "time"

const (
	MaxAuthorNameLength  = 100
	MaxCommentTextLength = 1000
)

// Comment is a visitor comment on an artwork. Comments are published on
// submission; moderation removes them afterwards.
type Comment struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ArtworkID   int64   `gorm:"not null;index:idx_comments_artwork_created,priority:1" json:"artwork_id"`
	AuthorName  string  `gorm:"type:varchar(100);not null" json:"author_name"`
	AuthorEmail *string `gorm:"type:varchar(255)" json:"-"`
	CommentText string  `gorm:"type:text;not null" json:"comment_text"`
	IsApproved  bool    `gorm:"not null;default:true;index" json:"-"`

	CreatedAt time.Time `gorm:"index:idx_comments_artwork_created,priority:2" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }

// PublicComment is the projection returned to public readers.
type PublicComment struct {
	ID          uint      `json:"id"`
	AuthorName  string    `json:"author_name"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicColumns lists the columns selected into PublicComment.
var PublicColumns = []string{"id", "author_name", "comment_text", "created_at"}

// NewComment is the input to a public submission.
type NewComment struct {
	ArtworkID int64
	Name      string
	Email     string
	Text      string
}
