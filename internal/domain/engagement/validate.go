package engagement

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"portfolio-api/internal/apperror"
)

// Validate checks the length bounds of a submission. Lengths are counted in
// characters, not bytes.
func (n NewComment) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return apperror.ValidationFailed("name", "Name and comment are required")
	}
	if strings.TrimSpace(n.Text) == "" {
		return apperror.ValidationFailed("comment", "Name and comment are required")
	}
	if utf8.RuneCountInString(n.Name) > MaxAuthorNameLength {
		return apperror.ValidationFailed("name",
			fmt.Sprintf("Name too long (max %d characters)", MaxAuthorNameLength))
	}
	if utf8.RuneCountInString(n.Text) > MaxCommentTextLength {
		return apperror.ValidationFailed("comment",
			fmt.Sprintf("Comment too long (max %d characters)", MaxCommentTextLength))
	}
	return nil
}
