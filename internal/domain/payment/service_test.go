package payment

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
)

func newTestPayment(t *testing.T) (*Service, *prefs.Store) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := prefs.NewStore(prefs.NewMemoryBackend(), logger)
	return NewService(store, logger), store
}

func TestProcessSuccess(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayment(t)

	receipt, err := svc.Process(ctx, validCard(), decimal.NewFromInt(8990), false)
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.OrderRef)
	assert.Equal(t, "VISA", receipt.Brand)
	assert.Equal(t, "•••• •••• •••• 1111", receipt.Masked)
	assert.True(t, decimal.NewFromInt(8990).Equal(receipt.Amount))
}

func TestProcessRejectsInvalidCard(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayment(t)

	card := validCard()
	card.Number = "1234"

	_, err := svc.Process(ctx, card, decimal.NewFromInt(100), false)
	assert.ErrorContains(t, err, "card validation failed")
}

func TestProcessRejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayment(t)

	_, err := svc.Process(ctx, validCard(), decimal.NewFromInt(-1), false)
	assert.ErrorContains(t, err, "negative")
}

func TestProcessZeroAmountSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayment(t)

	_, err := svc.Process(ctx, validCard(), decimal.Zero, false)
	assert.NoError(t, err)
}

func TestProcessSavesCardWithoutCVV(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestPayment(t)

	card := validCard()
	card.Name = "  Jane Doe  "

	_, err := svc.Process(ctx, card, decimal.NewFromInt(100), true)
	require.NoError(t, err)

	assert.True(t, store.GetBool(ctx, prefs.KeySaveCardEnabled, false))

	// The name is persisted as entered, trimmed but not recased.
	saved, ok := store.LoadCard(ctx)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", saved.Name)
	assert.Equal(t, "4111 1111 1111 1111", saved.Number)
	assert.Equal(t, "12/27", saved.Expiry)
	assert.Equal(t, "VISA", saved.Brand)
}

func TestProcessWithoutOptInDoesNotSave(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestPayment(t)

	_, err := svc.Process(ctx, validCard(), decimal.NewFromInt(100), false)
	require.NoError(t, err)

	assert.False(t, store.GetBool(ctx, prefs.KeySaveCardEnabled, true))
	_, ok := store.LoadCard(ctx)
	assert.False(t, ok)
}

func TestSavedCardIsMasked(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayment(t)

	_, err := svc.Process(ctx, validCard(), decimal.NewFromInt(100), true)
	require.NoError(t, err)

	saved, ok := svc.SavedCard(ctx)
	require.True(t, ok)
	assert.Equal(t, "•••• •••• •••• 1111", saved.Number)
}

func TestForgetCard(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestPayment(t)

	_, err := svc.Process(ctx, validCard(), decimal.NewFromInt(100), true)
	require.NoError(t, err)

	svc.ForgetCard(ctx)

	_, ok := svc.SavedCard(ctx)
	assert.False(t, ok)
	assert.False(t, store.GetBool(ctx, prefs.KeySaveCardEnabled, true))
}
