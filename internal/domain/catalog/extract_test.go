package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractFirstHonorsDeclarationOrder(t *testing.T) {
	record := map[string]any{
		"name":  "From Name",
		"title": "From Title",
	}
	assert.Equal(t, "From Name", extractFirst(record, nameExtractors))

	delete(record, "name")
	assert.Equal(t, "From Title", extractFirst(record, nameExtractors))
}

func TestNameResResolution(t *testing.T) {
	record := map[string]any{"nameRes": "perfume_dior_sauvage"}
	assert.Equal(t, "Dior Sauvage", extractFirst(record, nameExtractors))

	// Unknown resource keys pass through verbatim.
	record["nameRes"] = "perfume_not_in_table"
	assert.Equal(t, "perfume_not_in_table", extractFirst(record, nameExtractors))
}

func TestImageExtractorFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   string
	}{
		{"image first", map[string]any{"image": "a", "imageUrl": "b"}, "a"},
		{"imageUrl second", map[string]any{"imageUrl": "b", "img": "f"}, "b"},
		{"imageRes third", map[string]any{"imageRes": "c", "poster": "e"}, "c"},
		{"posterName fourth", map[string]any{"posterName": "d", "poster": "e"}, "d"},
		{"poster fifth", map[string]any{"poster": "e", "img": "f"}, "e"},
		{"img last", map[string]any{"img": "f"}, "f"},
		{"nothing", map[string]any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractFirst(tt.record, imageExtractors))
		})
	}
}

func TestGenderExtractorFallbacks(t *testing.T) {
	assert.Equal(t, "men", extractFirst(map[string]any{"gender": "men", "category": "women"}, genderExtractors))
	assert.Equal(t, "women", extractFirst(map[string]any{"category": "women", "type": "men"}, genderExtractors))
	assert.Equal(t, "m", extractFirst(map[string]any{"type": "m"}, genderExtractors))
}

func TestOptStringIgnoresNonStrings(t *testing.T) {
	record := map[string]any{"name": 12.5}
	assert.Equal(t, "", optString(record, "name"))
	assert.Equal(t, "", optString(record, "missing"))
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   decimal.Decimal
	}{
		{"number", map[string]any{"price": 8990.0}, decimal.NewFromFloat(8990.0)},
		{"numeric string", map[string]any{"price": "7590.50"}, decimal.RequireFromString("7590.50")},
		{"garbage string", map[string]any{"price": "free"}, decimal.Zero},
		{"absent", map[string]any{}, decimal.Zero},
		{"wrong type", map[string]any{"price": true}, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(extractPrice(tt.record)), "got %s", extractPrice(tt.record))
		})
	}
}

func TestExtractID(t *testing.T) {
	assert.Equal(t, 7, extractID(map[string]any{"id": 7.0}, 3))
	assert.Equal(t, 3, extractID(map[string]any{}, 3))
	assert.Equal(t, 3, extractID(map[string]any{"id": "seven"}, 3))
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		raw  string
		want Gender
	}{
		{"men", GenderMen},
		{"MALE", GenderMen},
		{" m ", GenderMen},
		{"women", GenderWomen},
		{"Female", GenderWomen},
		{"f", GenderWomen},
		{"unisex", GenderUnknown},
		{"", GenderUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeGender(tt.raw), "raw=%q", tt.raw)
	}
}

func TestResolveAsset(t *testing.T) {
	assert.Equal(t, ImageRef{Asset: "mperfume1"}, ResolveAsset("mperfume1"))
	assert.Equal(t, ImageRef{Asset: "wperfume16"}, ResolveAsset("wperfume16.png"))
	assert.True(t, ResolveAsset("unknown_asset").IsZero())
	assert.True(t, ResolveAsset("").IsZero())
}
