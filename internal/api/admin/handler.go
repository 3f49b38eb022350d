package admin

import (
	"log/slog"
	"net/http"

	"portfolio-api/internal/api/comments"
	"portfolio-api/internal/api/params"
	"portfolio-api/internal/api/respond"
	"portfolio-api/internal/domain/access"
	"portfolio-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Issuer   *access.Issuer
	Comments *comments.Store
	Metrics  *metrics.Metrics
	Log      *slog.Logger
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// POST /admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, "Password required")
		return
	}

	token, err := h.Issuer.Login(req.Password)
	if err != nil {
		outcome := "error"
		if respond.Status(err) < http.StatusInternalServerError {
			outcome = "invalid"
		}
		h.Metrics.AdminLogin(outcome)
		respond.Error(c, h.Log, err, "Login failed")
		return
	}
	h.Metrics.AdminLogin("ok")

	respond.OK(c, LoginResponse{Success: true, Token: token})
}

// DELETE /admin/comment/:id
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, ok := params.ID(c, "id")
	if !ok {
		respond.NotFound(c)
		return
	}

	if err := h.Comments.Delete(c.Request.Context(), commentID); err != nil {
		respond.Error(c, h.Log, err, "Failed to delete comment")
		return
	}
	h.Metrics.CommentDeleted()
	h.Log.Info("comment deleted", slog.Int64("comment_id", commentID))
	respond.OK(c, gin.H{"success": true})
}
