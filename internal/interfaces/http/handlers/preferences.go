// internal/interfaces/http/handlers/preferences.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/payment"
	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
)

// PreferencesHandler reads and writes the per-user preference flags
type PreferencesHandler struct {
	store    *prefs.Store
	payments *payment.Service
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store *prefs.Store, payments *payment.Service) *PreferencesHandler {
	return &PreferencesHandler{
		store:    store,
		payments: payments,
	}
}

// Get returns the active user's preference flags
func (h *PreferencesHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ambient_enabled":       h.store.GetBool(ctx, prefs.KeyAmbientEnabled, false),
			"ambient_range":         h.store.GetString(ctx, prefs.KeyAmbientRange, ""),
			"dark_mode_enabled":     h.store.GetBool(ctx, prefs.KeyDarkModeEnabled, false),
			"battery_alert_enabled": h.store.GetBool(ctx, prefs.KeyBatteryAlerts, false),
			"battery_last_bucket":   h.store.GetInt(ctx, prefs.KeyBatteryLastBucket, -1),
			"save_card_enabled":     h.store.GetBool(ctx, prefs.KeySaveCardEnabled, false),
		},
	})
}

// Update applies the provided preference flags, leaving the rest untouched
func (h *PreferencesHandler) Update(c *gin.Context) {
	var req struct {
		AmbientEnabled      *bool   `json:"ambient_enabled"`
		AmbientRange        *string `json:"ambient_range"`
		DarkModeEnabled     *bool   `json:"dark_mode_enabled"`
		BatteryAlertEnabled *bool   `json:"battery_alert_enabled"`
		BatteryLastBucket   *int    `json:"battery_last_bucket"`
		SaveCardEnabled     *bool   `json:"save_card_enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	if req.AmbientEnabled != nil {
		h.store.SetBool(ctx, prefs.KeyAmbientEnabled, *req.AmbientEnabled)
	}
	if req.AmbientRange != nil {
		h.store.SetString(ctx, prefs.KeyAmbientRange, *req.AmbientRange)
	}
	if req.DarkModeEnabled != nil {
		h.store.SetBool(ctx, prefs.KeyDarkModeEnabled, *req.DarkModeEnabled)
	}
	if req.BatteryAlertEnabled != nil {
		h.store.SetBool(ctx, prefs.KeyBatteryAlerts, *req.BatteryAlertEnabled)
	}
	if req.BatteryLastBucket != nil {
		h.store.SetInt(ctx, prefs.KeyBatteryLastBucket, *req.BatteryLastBucket)
	}
	if req.SaveCardEnabled != nil {
		h.store.SetBool(ctx, prefs.KeySaveCardEnabled, *req.SaveCardEnabled)
		if !*req.SaveCardEnabled {
			h.store.ClearCard(ctx)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated",
	})
}

// GetCard returns the saved card with a masked number
func (h *PreferencesHandler) GetCard(c *gin.Context) {
	card, ok := h.payments.SavedCard(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No saved card",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": card,
	})
}

// DeleteCard forgets the saved card
func (h *PreferencesHandler) DeleteCard(c *gin.Context) {
	h.payments.ForgetCard(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Saved card removed",
	})
}
