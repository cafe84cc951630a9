// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
	"github.com/arumaroma/storefront-backend/internal/domain/recommend"
)

// CatalogHandler serves the reconciled perfume catalog
type CatalogHandler struct {
	reconciler *catalog.Reconciler
	cache      *catalog.Cache
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(reconciler *catalog.Reconciler, cache *catalog.Cache) *CatalogHandler {
	return &CatalogHandler{
		reconciler: reconciler,
		cache:      cache,
	}
}

// List returns the reconciled catalog and its source label
func (h *CatalogHandler) List(c *gin.Context) {
	result := h.reconciler.Reconcile(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"data":   result.Items,
		"source": result.Source,
	})
}

// Get returns a single catalog item by id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item id",
		})
		return
	}

	item, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": item,
	})
}

// Search returns catalog items whose name contains the query
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'q' is required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": h.cache.Search(query),
	})
}

// Recommendations returns seasonal picks from the cached catalog
func (h *CatalogHandler) Recommendations(c *gin.Context) {
	limit := 6
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	season := recommend.CurrentSeason()
	items := recommend.ForSeason(h.cache.All(), season, limit)

	c.JSON(http.StatusOK, gin.H{
		"data":   items,
		"season": season,
	})
}
