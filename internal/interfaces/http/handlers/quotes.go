// internal/interfaces/http/handlers/quotes.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/quotes"
)

// QuotesHandler serves fragrance-themed quotes
type QuotesHandler struct {
	quotes *quotes.Service
	limit  int
}

// NewQuotesHandler creates a new quotes handler
func NewQuotesHandler(quotesService *quotes.Service, limit int) *QuotesHandler {
	return &QuotesHandler{
		quotes: quotesService,
		limit:  limit,
	}
}

// List returns the fragrance quotes for the home screen
func (h *QuotesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.quotes.Fetch(c.Request.Context(), h.limit),
	})
}
