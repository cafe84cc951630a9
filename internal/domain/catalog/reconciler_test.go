package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves a fixed item list.
type staticSource struct {
	items []Item
}

func (s staticSource) Load(context.Context) []Item { return s.items }

func testItem(id int, name string, gender Gender) Item {
	return Item{
		ID:     id,
		Name:   name,
		Image:  ImageRef{Asset: "mperfume1"},
		Price:  decimal.NewFromInt(1000),
		Gender: gender,
	}
}

func TestReconcileBundledOnly(t *testing.T) {
	bundled := staticSource{items: []Item{
		testItem(0, "Dior Sauvage", GenderMen),
		testItem(1, "Creed Aventus", GenderMen),
	}}

	reconciler := NewReconciler(bundled, nil, NewCache(), discardLogger())
	result := reconciler.Reconcile(context.Background())

	assert.Equal(t, SourceLocal, result.Source)
	assert.Len(t, result.Items, 2)
}

func TestReconcileRemoteEmptyMeansOffline(t *testing.T) {
	bundled := staticSource{items: []Item{testItem(0, "Dior Sauvage", GenderMen)}}
	remote := staticSource{}

	reconciler := NewReconciler(bundled, remote, NewCache(), discardLogger())
	result := reconciler.Reconcile(context.Background())

	assert.Equal(t, SourceLocalOffline, result.Source)
	assert.Len(t, result.Items, 1)
}

func TestReconcileMergesRemote(t *testing.T) {
	bundled := staticSource{items: []Item{testItem(0, "Dior Sauvage", GenderMen)}}
	remote := staticSource{items: []Item{testItem(100, "Aqua Marine", GenderMen)}}

	reconciler := NewReconciler(bundled, remote, NewCache(), discardLogger())
	result := reconciler.Reconcile(context.Background())

	assert.Equal(t, SourceLocalRemote, result.Source)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Dior Sauvage", result.Items[0].Name)
	assert.Equal(t, "Aqua Marine", result.Items[1].Name)
}

func TestReconcileDeduplicatesByID(t *testing.T) {
	bundled := staticSource{items: []Item{testItem(0, "Dior Sauvage", GenderMen)}}
	remote := staticSource{items: []Item{testItem(0, "Different Name", GenderMen)}}

	reconciler := NewReconciler(bundled, remote, NewCache(), discardLogger())
	result := reconciler.Reconcile(context.Background())

	// The bundled occurrence wins on an id conflict.
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Dior Sauvage", result.Items[0].Name)
}

func TestReconcileDeduplicatesByNormalizedName(t *testing.T) {
	bundled := staticSource{items: []Item{testItem(0, "Dior Sauvage", GenderMen)}}
	remote := staticSource{items: []Item{testItem(100, "  DIOR SAUVAGE  ", GenderMen)}}

	reconciler := NewReconciler(bundled, remote, NewCache(), discardLogger())
	result := reconciler.Reconcile(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, 0, result.Items[0].ID)
}

func TestDedupeRecordsDroppedItemIDs(t *testing.T) {
	// The second item loses its name collision against the first, but its
	// id still counts as seen, so the third item's id reuse loses too.
	kept := dedupe([]Item{
		testItem(1, "Aventus", GenderMen),
		testItem(2, "aventus", GenderMen),
		testItem(2, "Baccarat Rouge", GenderMen),
	})

	require.Len(t, kept, 1)
	assert.Equal(t, 1, kept[0].ID)
	assert.Equal(t, "Aventus", kept[0].Name)
}

func TestDedupeDroppedIDDoesNotReserveItsName(t *testing.T) {
	// A name key is only recorded for items whose id was first-seen, so a
	// later item may still claim the name of an id-collision casualty.
	kept := dedupe([]Item{
		testItem(1, "Aventus", GenderMen),
		testItem(1, "Baccarat Rouge", GenderMen),
		testItem(2, "Baccarat Rouge", GenderMen),
	})

	require.Len(t, kept, 2)
	assert.Equal(t, "Aventus", kept[0].Name)
	assert.Equal(t, 2, kept[1].ID)
	assert.Equal(t, "Baccarat Rouge", kept[1].Name)
}

func TestReconcileSameNameDifferentGenderIsKept(t *testing.T) {
	bundled := staticSource{items: []Item{testItem(0, "Eros", GenderMen)}}
	remote := staticSource{items: []Item{testItem(100, "Eros", GenderWomen)}}

	reconciler := NewReconciler(bundled, remote, NewCache(), discardLogger())
	result := reconciler.Reconcile(context.Background())

	assert.Len(t, result.Items, 2)
}

func TestReconcilePublishesToCache(t *testing.T) {
	cache := NewCache()
	bundled := staticSource{items: []Item{testItem(0, "Dior Sauvage", GenderMen)}}

	reconciler := NewReconciler(bundled, nil, cache, discardLogger())
	reconciler.Reconcile(context.Background())

	item, ok := cache.Get(0)
	require.True(t, ok)
	assert.Equal(t, "Dior Sauvage", item.Name)
}

func TestCacheNeverEvicts(t *testing.T) {
	cache := NewCache()
	cache.Update([]Item{testItem(0, "First", GenderMen), testItem(1, "Second", GenderMen)})

	// A later pass without item 1 leaves it in place.
	cache.Update([]Item{testItem(0, "First Renamed", GenderMen)})

	item, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Second", item.Name)

	item, ok = cache.Get(0)
	require.True(t, ok)
	assert.Equal(t, "First Renamed", item.Name)
}

func TestCacheSearch(t *testing.T) {
	cache := NewCache()
	cache.Update([]Item{
		testItem(2, "Bleu de Chanel", GenderMen),
		testItem(0, "Chance Chanel", GenderWomen),
		testItem(1, "Dior Sauvage", GenderMen),
	})

	matches := cache.Search("chanel")
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].ID)
	assert.Equal(t, 2, matches[1].ID)

	assert.Nil(t, cache.Search("   "))
	assert.Empty(t, cache.Search("nonexistent"))
}
