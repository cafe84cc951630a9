// internal/domain/recommend/season.go
package recommend

import (
	"strings"
	"time"

	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
)

// Season labels used for merchandising.
const (
	Winter = "Winter"
	Spring = "Spring"
	Summer = "Summer"
	Autumn = "Autumn"
)

// ReferenceLatitude is the fixed storefront latitude used for season
// detection; there is no live geolocation.
const ReferenceLatitude = 58.7984

// seasonKeywords scores items by substring containment in the item name.
var seasonKeywords = map[string][]string{
	Winter: {"amber", "vanilla", "oud", "spice", "spicy", "leather", "noir", "intense", "warm", "wood"},
	Summer: {"aqua", "marine", "blue", "citrus", "fresh", "cool", "sport", "ocean", "light"},
	Spring: {"rose", "bloom", "floral", "garden", "petal", "lily", "blossom", "spring"},
	Autumn: {"wood", "cedar", "sandal", "musk", "fig", "smoke", "smoky", "amber"},
}

// DetectSeason maps a calendar month onto a season, with a six-month
// shift for southern latitudes.
func DetectSeason(month time.Month, latitude float64) string {
	m := int(month)
	if latitude < 0 {
		m = (m+6-1)%12 + 1
	}
	switch m {
	case 12, 1, 2:
		return Winter
	case 3, 4, 5:
		return Spring
	case 6, 7, 8:
		return Summer
	default:
		return Autumn
	}
}

// CurrentSeason detects the season for the reference latitude right now.
func CurrentSeason() string {
	return DetectSeason(time.Now().Month(), ReferenceLatitude)
}

// ForSeason returns up to limit items for merchandising display: items
// whose lower-cased name contains a season keyword come first, in catalog
// order, topped up with remaining items in catalog order until the limit
// or the catalog is exhausted.
func ForSeason(items []catalog.Item, season string, limit int) []catalog.Item {
	if limit <= 0 {
		return nil
	}

	keywords, ok := seasonKeywords[season]
	if !ok {
		keywords = seasonKeywords[Autumn]
	}

	selected := make([]catalog.Item, 0, limit)
	picked := make(map[int]struct{}, limit)

	for _, item := range items {
		if len(selected) == limit {
			return selected
		}
		name := strings.ToLower(item.Name)
		for _, keyword := range keywords {
			if strings.Contains(name, keyword) {
				selected = append(selected, item)
				picked[item.ID] = struct{}{}
				break
			}
		}
	}

	for _, item := range items {
		if len(selected) == limit {
			break
		}
		if _, ok := picked[item.ID]; ok {
			continue
		}
		selected = append(selected, item)
		picked[item.ID] = struct{}{}
	}
	return selected
}
