// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
	"github.com/arumaroma/storefront-backend/internal/domain/favorites"
)

// FavoritesHandler manages the per-user favorites list
type FavoritesHandler struct {
	favorites *favorites.Service
	cache     *catalog.Cache
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favService *favorites.Service, cache *catalog.Cache) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favService,
		cache:     cache,
	}
}

type favoriteEntry struct {
	Key  favorites.Key `json:"key"`
	Item *catalog.Item `json:"item,omitempty"`
}

// List returns the active user's favorites with resolved catalog items
func (h *FavoritesHandler) List(c *gin.Context) {
	keys := h.favorites.Keys(c.Request.Context())

	entries := make([]favoriteEntry, 0, len(keys))
	for _, key := range keys {
		entry := favoriteEntry{Key: key}
		if item, ok := h.cache.Get(key.ID); ok {
			entry.Item = &item
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": entries,
	})
}

// Toggle flips the favorite state of one item
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	var req struct {
		Kind string `json:"kind" binding:"required,oneof=local remote"`
		ID   int    `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	key := favorites.Key{Kind: favorites.Kind(req.Kind), ID: req.ID}
	h.favorites.Toggle(c.Request.Context(), key)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Favorite toggled",
		"favorite": h.favorites.IsFavorite(c.Request.Context(), key),
	})
}
