// internal/domain/favorites/service.go
package favorites

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
)

// Service tracks which catalog items the active user has marked favorite.
// Local favorites are held in memory as an ordered set and persisted as a
// CSV id list after every toggle; remote favorites live directly in the
// persisted string set. All operations are in-memory-first with
// persistence as a side effect, never returning errors.
type Service struct {
	store  *prefs.Store
	logger *logrus.Logger

	mu       sync.Mutex
	localIDs []int // ordered, unique
}

// NewService creates a favorites service and loads the persisted local
// favorites for the currently active user scope.
func NewService(ctx context.Context, store *prefs.Store, logger *logrus.Logger) *Service {
	s := &Service{store: store, logger: logger}
	s.ReloadForActiveUser(ctx)
	return s
}

// Toggle flips the favorite state of a key and persists the result.
func (s *Service) Toggle(ctx context.Context, key Key) {
	if key.Kind == KindRemote {
		s.toggleRemote(ctx, key)
		return
	}

	s.mu.Lock()
	if idx := indexOf(s.localIDs, key.ID); idx >= 0 {
		s.localIDs = append(s.localIDs[:idx], s.localIDs[idx+1:]...)
	} else {
		s.localIDs = append(s.localIDs, key.ID)
	}
	snapshot := append([]int(nil), s.localIDs...)
	s.mu.Unlock()

	s.store.SetIntList(ctx, prefs.KeyFavoriteIDs, snapshot)
}

// IsFavorite reports whether a key is currently favorited.
func (s *Service) IsFavorite(ctx context.Context, key Key) bool {
	if key.Kind == KindRemote {
		set := s.store.GetStringSet(ctx, prefs.KeyFavoritesRemote)
		_, ok := set[key.String()]
		return ok
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.localIDs, key.ID) >= 0
}

// Keys returns a snapshot of every favorite for the active user, local
// favorites first in toggle order.
func (s *Service) Keys(ctx context.Context) []Key {
	s.mu.Lock()
	keys := make([]Key, 0, len(s.localIDs))
	for _, id := range s.localIDs {
		keys = append(keys, Local(id))
	}
	s.mu.Unlock()

	for raw := range s.store.GetStringSet(ctx, prefs.KeyFavoritesRemote) {
		key, err := ParseKey(raw)
		if err != nil {
			s.logger.WithError(err).Warn("dropping unparsable favorite key")
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// ReloadForActiveUser replaces the in-memory local favorites with the
// persisted set for the (possibly newly active) user scope. Called after
// login and logout so no stale favorites leak between sessions.
func (s *Service) ReloadForActiveUser(ctx context.Context) {
	stored := s.store.GetIntList(ctx, prefs.KeyFavoriteIDs)

	s.mu.Lock()
	s.localIDs = append(s.localIDs[:0], stored...)
	s.mu.Unlock()

	s.logger.WithField("count", len(stored)).Debug("reloaded favorites for active user")
}

func (s *Service) toggleRemote(ctx context.Context, key Key) {
	set := s.store.GetStringSet(ctx, prefs.KeyFavoritesRemote)
	raw := key.String()
	if _, ok := set[raw]; ok {
		delete(set, raw)
	} else {
		set[raw] = struct{}{}
	}
	s.store.SetStringSet(ctx, prefs.KeyFavoritesRemote, set)
	s.logger.WithField("count", len(set)).Debug("remote favorites updated")
}

func indexOf(ids []int, id int) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
