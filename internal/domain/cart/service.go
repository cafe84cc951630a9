// internal/domain/cart/service.go
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
)

// Totals summarizes the cart for display.
type Totals struct {
	ItemCount int             `json:"item_count"`
	SubTotal  decimal.Decimal `json:"sub_total"`
}

// Service maintains the items a user intends to purchase, split into two
// lists because resource-based and remote-sourced items persist
// differently: only the resource-based list survives a restart, as an
// ordered id list. Quantities are session state in the UI layer and are
// never persisted.
type Service struct {
	store  *prefs.Store
	logger *logrus.Logger

	mu          sync.Mutex
	items       []catalog.Item // resource-based, persisted by id
	remoteItems []catalog.Item // remote-sourced, process lifetime only
	lookup      map[int]catalog.Item
}

// NewService creates a cart service. Restore must be called before the
// cart can rehydrate persisted ids.
func NewService(store *prefs.Store, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		lookup: make(map[int]catalog.Item),
	}
}

// Restore rebuilds the id lookup table from the bundled catalog and
// rehydrates the persisted cart ids into full items. Persisted ids with
// no bundled counterpart are silently dropped.
func (s *Service) Restore(ctx context.Context, bundled catalog.Source) {
	lookup := make(map[int]catalog.Item)
	for _, item := range bundled.Load(ctx) {
		lookup[item.ID] = item
	}

	storedIDs := s.store.GetIntList(ctx, prefs.KeyCartIDs)

	s.mu.Lock()
	s.lookup = lookup
	s.items = s.items[:0]
	for _, id := range storedIDs {
		if item, ok := lookup[id]; ok {
			s.items = append(s.items, item)
		}
	}
	restored := len(s.items)
	s.mu.Unlock()

	s.logger.WithField("count", restored).Debug("restored cart from storage")
}

// Add appends a resource-based item to the cart and persists the new
// ordered id list.
func (s *Service) Add(ctx context.Context, item catalog.Item) {
	s.mu.Lock()
	s.items = append(s.items, item)
	ids := s.idsLocked()
	s.mu.Unlock()

	s.store.SetIntList(ctx, prefs.KeyCartIDs, ids)
}

// AddRemote appends a remote-sourced item. Remote entries are not
// persisted; there is no durable schema for them.
func (s *Service) AddRemote(_ context.Context, item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remoteItems = append(s.remoteItems, item)
}

// Remove deletes the first resource-based entry matching the id and
// persists when the list changed.
func (s *Service) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	removed := false
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	ids := s.idsLocked()
	s.mu.Unlock()

	if removed {
		s.store.SetIntList(ctx, prefs.KeyCartIDs, ids)
	}
}

// RemoveRemote deletes every remote-sourced entry matching the id.
func (s *Service) RemoveRemote(_ context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.remoteItems[:0]
	for _, item := range s.remoteItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.remoteItems = kept
}

// Items returns a read-only snapshot of the resource-based entries.
func (s *Service) Items() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Item(nil), s.items...)
}

// RemoteItems returns a read-only snapshot of the remote-sourced entries.
func (s *Service) RemoteItems() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Item(nil), s.remoteItems...)
}

// Clear empties both lists and persists the now-empty id list. Called
// after successful checkout.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = s.items[:0]
	s.remoteItems = s.remoteItems[:0]
	s.mu.Unlock()

	s.store.SetIntList(ctx, prefs.KeyCartIDs, nil)
}

// CalculateTotals sums both lists at a default quantity of one per entry.
func (s *Service) CalculateTotals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals Totals
	totals.SubTotal = decimal.Zero
	for _, item := range s.items {
		totals.SubTotal = totals.SubTotal.Add(item.Price)
	}
	for _, item := range s.remoteItems {
		totals.SubTotal = totals.SubTotal.Add(item.Price)
	}
	totals.ItemCount = len(s.items) + len(s.remoteItems)
	return totals
}

func (s *Service) idsLocked() []int {
	ids := make([]int, len(s.items))
	for i, item := range s.items {
		ids[i] = item.ID
	}
	return ids
}
