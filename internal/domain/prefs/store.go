// internal/domain/prefs/store.go
package prefs

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Base preference keys. All of them except the profile keys are suffixed
// with the active user scope before hitting the backend.
const (
	KeyFavoriteIDs       = "favorites_ids"     // CSV of int ids
	KeyFavoritesRemote   = "favorites_remote"  // CSV string set
	KeyCartIDs           = "cart_ids"          // CSV of int ids, ordered
	KeyAmbientEnabled    = "ambient_enabled"   // bool
	KeyAmbientRange      = "ambient_range"     // string
	KeyDarkModeEnabled   = "dark_mode_enabled" // bool
	KeyBatteryAlerts     = "battery_alert_enabled"
	KeyBatteryLastBucket = "battery_last_bucket" // int
	KeySaveCardEnabled   = "save_card_enabled"   // bool
	KeyCardName          = "card_name"
	KeyCardNumber        = "card_number" // formatted, never a CVV
	KeyCardExpiry        = "card_expiry" // MM/YY
	KeyCardBrand         = "card_brand"

	// Profile keys are deliberately unscoped: the scope is derived from them.
	keyUserName  = "user_name"
	keyUserEmail = "user_email"
)

// GuestScope is the scope applied while no profile is stored.
const GuestScope = "guest"

// Store is the per-user scoped preference store. Every read and write
// recomputes the active scope from the stored profile fields, so switching
// accounts never leaks state between users.
type Store struct {
	backend Backend
	logger  *logrus.Logger
}

// NewStore creates a preference store over the given backend.
func NewStore(backend Backend, logger *logrus.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// ActiveScope derives the current user scope from the stored profile:
// email first, then username, then the guest token.
func (s *Store) ActiveScope(ctx context.Context) string {
	if email := s.rawGet(ctx, keyUserEmail); email != "" {
		return SanitizeScope(email)
	}
	if name := s.rawGet(ctx, keyUserName); name != "" {
		return SanitizeScope(name)
	}
	return GuestScope
}

// SanitizeScope lowercases the identity and maps every character outside
// [a-z0-9@._-] to an underscore.
func SanitizeScope(identity string) string {
	lowered := strings.ToLower(strings.TrimSpace(identity))
	if lowered == "" {
		return GuestScope
	}
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '@', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ScopedKey returns the backend key for a base key under the active scope.
func (s *Store) ScopedKey(ctx context.Context, baseKey string) string {
	return baseKey + "_" + s.ActiveScope(ctx)
}

// GetString returns the scoped string value, or the default when absent.
func (s *Store) GetString(ctx context.Context, baseKey, defaultValue string) string {
	value, ok, err := s.backend.Get(ctx, s.ScopedKey(ctx, baseKey))
	if err != nil {
		s.logger.WithError(err).WithField("key", baseKey).Warn("preference read failed, using default")
		return defaultValue
	}
	if !ok {
		return defaultValue
	}
	return value
}

// SetString stores a scoped string value.
func (s *Store) SetString(ctx context.Context, baseKey, value string) {
	if err := s.backend.Set(ctx, s.ScopedKey(ctx, baseKey), value); err != nil {
		s.logger.WithError(err).WithField("key", baseKey).Warn("preference write failed")
	}
}

// GetBool returns the scoped boolean value, or the default when absent.
func (s *Store) GetBool(ctx context.Context, baseKey string, defaultValue bool) bool {
	raw := s.GetString(ctx, baseKey, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// SetBool stores a scoped boolean value.
func (s *Store) SetBool(ctx context.Context, baseKey string, value bool) {
	s.SetString(ctx, baseKey, strconv.FormatBool(value))
}

// GetInt returns the scoped integer value, or the default when absent.
func (s *Store) GetInt(ctx context.Context, baseKey string, defaultValue int) int {
	raw := s.GetString(ctx, baseKey, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// SetInt stores a scoped integer value.
func (s *Store) SetInt(ctx context.Context, baseKey string, value int) {
	s.SetString(ctx, baseKey, strconv.Itoa(value))
}

// GetIntList decodes a scoped CSV of integers, preserving order and
// dropping blank or non-numeric entries.
func (s *Store) GetIntList(ctx context.Context, baseKey string) []int {
	raw := s.GetString(ctx, baseKey, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// SetIntList stores an ordered integer list as a scoped CSV.
func (s *Store) SetIntList(ctx context.Context, baseKey string, ids []int) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	s.SetString(ctx, baseKey, strings.Join(parts, ","))
}

// GetStringSet decodes a scoped CSV string set.
func (s *Store) GetStringSet(ctx context.Context, baseKey string) map[string]struct{} {
	raw := s.GetString(ctx, baseKey, "")
	set := make(map[string]struct{})
	if raw == "" {
		return set
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[part] = struct{}{}
	}
	return set
}

// SetStringSet stores a string set as a scoped CSV.
func (s *Store) SetStringSet(ctx context.Context, baseKey string, set map[string]struct{}) {
	parts := make([]string, 0, len(set))
	for key := range set {
		parts = append(parts, key)
	}
	s.SetString(ctx, baseKey, strings.Join(parts, ","))
}

// rawGet reads an unscoped key, swallowing backend errors.
func (s *Store) rawGet(ctx context.Context, key string) string {
	value, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("preference read failed")
		return ""
	}
	if !ok {
		return ""
	}
	return value
}

// rawSet writes an unscoped key, swallowing backend errors.
func (s *Store) rawSet(ctx context.Context, key, value string) {
	if err := s.backend.Set(ctx, key, value); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("preference write failed")
	}
}
