package artworks

import (
	"net/http"
	"strconv"

	"portfolio-api/internal/api/params"
	"portfolio-api/internal/api/respond"
	"portfolio-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Catalog *catalog.Catalog
}

type ListResponse struct {
	Artworks []catalog.Artwork `json:"artworks"`
}

type DetailResponse struct {
	Artwork catalog.Artwork `json:"artwork"`
	PrevID  *int            `json:"prevId"`
	NextID  *int            `json:"nextId"`
}

// GET /artworks?limit=n
func (h *Handler) List(c *gin.Context) {
	raw := c.Query("limit")
	if raw == "" {
		respond.OK(c, ListResponse{Artworks: h.Catalog.Sorted()})
		return
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respond.Message(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	respond.OK(c, ListResponse{Artworks: h.Catalog.Latest(n)})
}

// GET /artworks/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok || !h.Catalog.Has(id) {
		respond.Message(c, http.StatusNotFound, "Artwork not found")
		return
	}

	art, _ := h.Catalog.ByID(int(id))
	prev, next := h.Catalog.Adjacent(art.ID)
	respond.OK(c, DetailResponse{Artwork: art, PrevID: prev, NextID: next})
}
