package likes

import (
	"log/slog"

	"portfolio-api/internal/api/params"
	"portfolio-api/internal/api/respond"
	"portfolio-api/internal/domain/identity"
	"portfolio-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store    *Store
	Identity *identity.Resolver
	Metrics  *metrics.Metrics
	Log      *slog.Logger
}

// GET /artwork/:id/likes
func (h *Handler) GetLikes(c *gin.Context) {
	artworkID, ok := params.ID(c, "id")
	if !ok {
		respond.NotFound(c)
		return
	}

	n, err := h.Store.Count(c.Request.Context(), artworkID)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to get likes")
		return
	}
	respond.OK(c, gin.H{"likes": n})
}

// GET /artwork/:id/liked
func (h *Handler) GetLiked(c *gin.Context) {
	artworkID, ok := params.ID(c, "id")
	if !ok {
		respond.NotFound(c)
		return
	}

	liked, err := h.Store.IsLiked(c.Request.Context(), artworkID, h.Identity.Resolve(c.Request))
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to check liked status")
		return
	}
	respond.OK(c, gin.H{"liked": liked})
}

// POST /artwork/:id/like
func (h *Handler) ToggleLike(c *gin.Context) {
	artworkID, ok := params.ID(c, "id")
	if !ok {
		respond.NotFound(c)
		return
	}

	res, err := h.Store.Toggle(c.Request.Context(), artworkID, h.Identity.Resolve(c.Request))
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to toggle like")
		return
	}
	h.Metrics.LikeToggled(res.Liked)
	respond.OK(c, res)
}
