// internal/domain/payment/service.go
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
)

// Receipt is the outcome of a simulated payment.
type Receipt struct {
	OrderRef string          `json:"order_ref"`
	Amount   decimal.Decimal `json:"amount"`
	Brand    string          `json:"brand"`
	Masked   string          `json:"masked_number"`
}

// Service simulates payment processing. No gateway is involved: a valid
// card and a positive amount always succeed.
type Service struct {
	store  *prefs.Store
	logger *logrus.Logger
}

// NewService creates a payment service.
func NewService(store *prefs.Store, logger *logrus.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Process validates the card and simulates the charge. When saveCard is
// set, the card stub is persisted for the active user — formatted number
// only, never the CVV.
func (s *Service) Process(ctx context.Context, card CardDetails, amount decimal.Decimal, saveCard bool) (*Receipt, error) {
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("card validation failed: %w", err)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	brand := DetectBrand(card.Number)

	s.store.SetBool(ctx, prefs.KeySaveCardEnabled, saveCard)
	if saveCard {
		s.store.SaveCard(ctx, prefs.SavedCard{
			Name:   strings.TrimSpace(card.Name),
			Number: FormatNumber(card.Number),
			Expiry: card.Expiry,
			Brand:  brand,
		})
	}

	receipt := &Receipt{
		OrderRef: uuid.New().String(),
		Amount:   amount,
		Brand:    brand,
		Masked:   MaskNumber(card.Number),
	}

	s.logger.WithFields(logrus.Fields{
		"order_ref": receipt.OrderRef,
		"brand":     brand,
		"saved":     saveCard,
	}).Info("simulated payment processed")

	return receipt, nil
}

// SavedCard returns the active user's persisted card stub, masked for
// display.
func (s *Service) SavedCard(ctx context.Context) (prefs.SavedCard, bool) {
	card, ok := s.store.LoadCard(ctx)
	if !ok {
		return prefs.SavedCard{}, false
	}
	card.Number = MaskNumber(card.Number)
	return card, true
}

// ForgetCard removes the active user's persisted card stub.
func (s *Service) ForgetCard(ctx context.Context) {
	s.store.ClearCard(ctx)
	s.store.SetBool(ctx, prefs.KeySaveCardEnabled, false)
}
