package prefs

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewStore(NewMemoryBackend(), logger)
}

func TestSanitizeScope(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		want     string
	}{
		{"plain email", "jane@example.com", "jane@example.com"},
		{"mixed case", "Jane@Example.com", "jane@example.com"},
		{"surrounding spaces", "  jane@example.com  ", "jane@example.com"},
		{"plus sign replaced", "jane+tag@example.com", "jane_tag@example.com"},
		{"spaces replaced", "jane doe", "jane_doe"},
		{"allowed punctuation kept", "jane.doe_x-1@example.com", "jane.doe_x-1@example.com"},
		{"empty falls back to guest", "", GuestScope},
		{"blank falls back to guest", "   ", GuestScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeScope(tt.identity))
		})
	}
}

func TestActiveScope(t *testing.T) {
	ctx := context.Background()

	t.Run("guest without profile", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, GuestScope, store.ActiveScope(ctx))
	})

	t.Run("email wins over username", func(t *testing.T) {
		store := newTestStore(t)
		store.SaveProfile(ctx, "Jane", "Jane@Example.com")
		assert.Equal(t, "jane@example.com", store.ActiveScope(ctx))
	})

	t.Run("username when no email", func(t *testing.T) {
		store := newTestStore(t)
		store.SaveProfile(ctx, "Jane Doe", "")
		assert.Equal(t, "jane_doe", store.ActiveScope(ctx))
	})

	t.Run("clear profile reverts to guest", func(t *testing.T) {
		store := newTestStore(t)
		store.SaveProfile(ctx, "Jane", "jane@example.com")
		store.ClearProfile(ctx)
		assert.Equal(t, GuestScope, store.ActiveScope(ctx))
	})
}

func TestScopedKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.Equal(t, "cart_ids_guest", store.ScopedKey(ctx, KeyCartIDs))

	store.SaveProfile(ctx, "", "Jane@Example.com")
	assert.Equal(t, "cart_ids_jane@example.com", store.ScopedKey(ctx, KeyCartIDs))
}

func TestScopedValuesDoNotLeakBetweenUsers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	store.SaveProfile(ctx, "", "alice@example.com")
	store.SetBool(ctx, KeyDarkModeEnabled, true)
	store.SetIntList(ctx, KeyCartIDs, []int{3, 1, 2})

	// Switching the profile switches every scoped read.
	store.SaveProfile(ctx, "", "bob@example.com")
	assert.False(t, store.GetBool(ctx, KeyDarkModeEnabled, false))
	assert.Empty(t, store.GetIntList(ctx, KeyCartIDs))

	store.SaveProfile(ctx, "", "alice@example.com")
	assert.True(t, store.GetBool(ctx, KeyDarkModeEnabled, false))
	assert.Equal(t, []int{3, 1, 2}, store.GetIntList(ctx, KeyCartIDs))
}

func TestGetBoolDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.True(t, store.GetBool(ctx, KeyAmbientEnabled, true))
	assert.False(t, store.GetBool(ctx, KeyAmbientEnabled, false))

	store.SetString(ctx, KeyAmbientEnabled, "not-a-bool")
	assert.True(t, store.GetBool(ctx, KeyAmbientEnabled, true))
}

func TestGetIntDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.Equal(t, 42, store.GetInt(ctx, KeyBatteryLastBucket, 42))

	store.SetInt(ctx, KeyBatteryLastBucket, 7)
	assert.Equal(t, 7, store.GetInt(ctx, KeyBatteryLastBucket, 42))
}

func TestIntListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	store.SetIntList(ctx, KeyCartIDs, []int{9, 2, 9, 4})
	assert.Equal(t, []int{9, 2, 9, 4}, store.GetIntList(ctx, KeyCartIDs))
}

func TestGetIntListDropsGarbage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	store.SetString(ctx, KeyCartIDs, "1, x,,3")
	assert.Equal(t, []int{1, 3}, store.GetIntList(ctx, KeyCartIDs))
}

func TestStringSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	set := map[string]struct{}{"remote:1": {}, "remote:7": {}}
	store.SetStringSet(ctx, KeyFavoritesRemote, set)
	assert.Equal(t, set, store.GetStringSet(ctx, KeyFavoritesRemote))
}

func TestBackendErrorsFallBackToDefaults(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := NewStore(failingBackend{}, logger)

	assert.Equal(t, "fallback", store.GetString(ctx, KeyAmbientRange, "fallback"))
	assert.True(t, store.GetBool(ctx, KeyDarkModeEnabled, true))
	assert.Equal(t, GuestScope, store.ActiveScope(ctx))

	// Writes must not panic either.
	store.SetString(ctx, KeyAmbientRange, "ignored")
	store.ClearProfile(ctx)
}

func TestSaveAndLoadCard(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, ok := store.LoadCard(ctx)
	require.False(t, ok)

	store.SaveCard(ctx, SavedCard{
		Name:   "JANE DOE",
		Number: "4111 1111 1111 1111",
		Expiry: "12/27",
		Brand:  "VISA",
	})

	card, ok := store.LoadCard(ctx)
	require.True(t, ok)
	assert.Equal(t, "JANE DOE", card.Name)
	assert.Equal(t, "4111 1111 1111 1111", card.Number)
	assert.Equal(t, "12/27", card.Expiry)
	assert.Equal(t, "VISA", card.Brand)

	store.ClearCard(ctx)
	_, ok = store.LoadCard(ctx)
	assert.False(t, ok)
}

func TestLoadCardBrandFallback(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	store.SetString(ctx, KeyCardName, "JANE DOE")
	store.SetString(ctx, KeyCardNumber, "4111 1111 1111 1111")
	store.SetString(ctx, KeyCardExpiry, "12/27")

	card, ok := store.LoadCard(ctx)
	require.True(t, ok)
	assert.Equal(t, "CARD", card.Brand)
}

// failingBackend rejects every operation.
type failingBackend struct{}

func (failingBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, assert.AnError
}

func (failingBackend) Set(context.Context, string, string) error { return assert.AnError }

func (failingBackend) Delete(context.Context, ...string) error { return assert.AnError }
