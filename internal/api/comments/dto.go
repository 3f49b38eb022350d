package comments

import "portfolio-api/internal/domain/engagement"

type AddCommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

type ListCommentsResponse struct {
	Comments []engagement.PublicComment `json:"comments"`
}

type AddCommentResponse struct {
	Success bool                     `json:"success"`
	Comment engagement.PublicComment `json:"comment"`
}
