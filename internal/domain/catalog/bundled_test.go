package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledSourceEmbeddedCatalog(t *testing.T) {
	source := NewBundledSource("", discardLogger())
	items := source.Load(context.Background())

	require.Len(t, items, 30)

	men, women := 0, 0
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.False(t, item.Image.IsZero(), "item %d has no image", item.ID)
		assert.True(t, item.Price.IsPositive(), "item %d has no price", item.ID)

		_, dup := seen[item.ID]
		assert.False(t, dup, "duplicate id %d", item.ID)
		seen[item.ID] = struct{}{}

		switch item.Gender {
		case GenderMen:
			men++
		case GenderWomen:
			women++
		}
	}
	assert.Equal(t, 15, men)
	assert.Equal(t, 15, women)
}

func TestBundledSourcePathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[
		{"id": 1, "name": "Override", "image": "mperfume1", "price": 100, "gender": "men"},
		{"id": 2, "image": "mperfume2", "price": 200}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	source := NewBundledSource(path, discardLogger())
	items := source.Load(context.Background())

	// The nameless record is dropped.
	require.Len(t, items, 1)
	assert.Equal(t, "Override", items[0].Name)
}

func TestBundledSourceMissingOverride(t *testing.T) {
	source := NewBundledSource(filepath.Join(t.TempDir(), "missing.json"), discardLogger())
	assert.Nil(t, source.Load(context.Background()))
}

func TestBundledSourceMalformedOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	source := NewBundledSource(path, discardLogger())
	assert.Nil(t, source.Load(context.Background()))
}
