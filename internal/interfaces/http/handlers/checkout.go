// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/cart"
	"github.com/arumaroma/storefront-backend/internal/domain/payment"
)

// CheckoutHandler runs the simulated payment flow
type CheckoutHandler struct {
	payments *payment.Service
	cart     *cart.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(payments *payment.Service, cartService *cart.Service) *CheckoutHandler {
	return &CheckoutHandler{
		payments: payments,
		cart:     cartService,
	}
}

// ProcessPayment validates the card, charges the cart total and clears the cart
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	var req struct {
		Card     payment.CardDetails `json:"card" binding:"required"`
		SaveCard bool                `json:"save_card"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	totals := h.cart.CalculateTotals()
	if totals.ItemCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	receipt, err := h.payments.Process(c.Request.Context(), req.Card, totals.SubTotal, req.SaveCard)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.cart.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment processed successfully",
		"data":    receipt,
	})
}
