package comments

import (
	"log/slog"
	"net/http"

	"portfolio-api/internal/api/params"
	"portfolio-api/internal/api/respond"
	"portfolio-api/internal/domain/engagement"
	"portfolio-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store   *Store
	Metrics *metrics.Metrics
	Log     *slog.Logger
}

// GET /artwork/:id/comments
func (h *Handler) ListComments(c *gin.Context) {
	artworkID, ok := params.ID(c, "id")
	if !ok {
		respond.NotFound(c)
		return
	}

	list, err := h.Store.ListApproved(c.Request.Context(), artworkID)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to get comments")
		return
	}
	respond.OK(c, ListCommentsResponse{Comments: list})
}

// POST /artwork/:id/comment
func (h *Handler) AddComment(c *gin.Context) {
	artworkID, ok := params.ID(c, "id")
	if !ok {
		respond.NotFound(c)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Store.Add(c.Request.Context(), engagement.NewComment{
		ArtworkID: artworkID,
		Name:      req.Name,
		Email:     req.Email,
		Text:      req.Comment,
	})
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to add comment")
		return
	}
	h.Metrics.CommentAdded()
	respond.OK(c, AddCommentResponse{Success: true, Comment: created})
}
