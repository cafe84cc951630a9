// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/cart"
	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
)

// CartHandler manages the shopping cart
type CartHandler struct {
	cart  *cart.Service
	cache *catalog.Cache
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cache *catalog.Cache) *CartHandler {
	return &CartHandler{
		cart:  cartService,
		cache: cache,
	}
}

// Get returns the cart contents and totals
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":        h.cart.Items(),
			"remote_items": h.cart.RemoteItems(),
			"totals":       h.cart.CalculateTotals(),
		},
	})
}

// AddItem puts a catalog item into the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ID     int  `json:"id"`
		Remote bool `json:"remote"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, ok := h.cache.Get(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
		return
	}

	if req.Remote {
		h.cart.AddRemote(c.Request.Context(), item)
	} else {
		h.cart.Add(c.Request.Context(), item)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"totals":  h.cart.CalculateTotals(),
	})
}

// RemoveItem takes one item out of the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item id",
		})
		return
	}

	if c.Query("remote") == "true" {
		h.cart.RemoveRemote(c.Request.Context(), id)
	} else {
		h.cart.Remove(c.Request.Context(), id)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"totals":  h.cart.CalculateTotals(),
	})
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
