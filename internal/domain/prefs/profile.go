// internal/domain/prefs/profile.go
package prefs

import "context"

// SavedCard is the persisted payment-method stub. The number is stored
// formatted, never with a CVV.
type SavedCard struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	Brand  string `json:"brand"`
}

// SaveProfile stores the active user's name and email. These two keys are
// unscoped since the scope itself is derived from them.
func (s *Store) SaveProfile(ctx context.Context, username, email string) {
	if username != "" {
		s.rawSet(ctx, keyUserName, username)
	}
	if email != "" {
		s.rawSet(ctx, keyUserEmail, email)
	}
}

// UserName returns the stored profile username, or empty.
func (s *Store) UserName(ctx context.Context) string {
	return s.rawGet(ctx, keyUserName)
}

// UserEmail returns the stored profile email, or empty.
func (s *Store) UserEmail(ctx context.Context) string {
	return s.rawGet(ctx, keyUserEmail)
}

// ClearProfile removes the stored profile fields. After this call the
// active scope reverts to the guest token.
func (s *Store) ClearProfile(ctx context.Context) {
	if err := s.backend.Delete(ctx, keyUserName, keyUserEmail); err != nil {
		s.logger.WithError(err).Warn("profile clear failed")
	}
}

// SaveCard persists the card stub for the active user.
func (s *Store) SaveCard(ctx context.Context, card SavedCard) {
	s.SetString(ctx, KeyCardName, card.Name)
	s.SetString(ctx, KeyCardNumber, card.Number)
	s.SetString(ctx, KeyCardExpiry, card.Expiry)
	s.SetString(ctx, KeyCardBrand, card.Brand)
}

// LoadCard returns the active user's saved card, if any. The brand falls
// back to a generic label when it was never recorded.
func (s *Store) LoadCard(ctx context.Context) (SavedCard, bool) {
	name := s.GetString(ctx, KeyCardName, "")
	number := s.GetString(ctx, KeyCardNumber, "")
	expiry := s.GetString(ctx, KeyCardExpiry, "")
	if name == "" || number == "" || expiry == "" {
		return SavedCard{}, false
	}
	return SavedCard{
		Name:   name,
		Number: number,
		Expiry: expiry,
		Brand:  s.GetString(ctx, KeyCardBrand, "CARD"),
	}, true
}

// ClearCard removes the active user's saved card.
func (s *Store) ClearCard(ctx context.Context) {
	keys := []string{
		s.ScopedKey(ctx, KeyCardName),
		s.ScopedKey(ctx, KeyCardNumber),
		s.ScopedKey(ctx, KeyCardExpiry),
		s.ScopedKey(ctx, KeyCardBrand),
	}
	if err := s.backend.Delete(ctx, keys...); err != nil {
		s.logger.WithError(err).Warn("saved card clear failed")
	}
}
