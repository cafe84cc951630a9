// internal/domain/catalog/assets.go
package catalog

import (
	"strconv"
	"strings"
)

// assetNames lists the image assets bundled with the storefront clients.
// Catalog records may reference them by bare name (with or without a file
// extension) instead of carrying a URL.
var assetNames = map[string]struct{}{}

func init() {
	for _, prefix := range []string{"mperfume", "wperfume"} {
		for i := 1; i <= 16; i++ {
			assetNames[prefix+strconv.Itoa(i)] = struct{}{}
		}
	}
}

// ResolveAsset maps a bundled image name to an ImageRef. Unknown names
// yield a zero reference, which callers accept as "no image".
func ResolveAsset(name string) ImageRef {
	base := name
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	if _, ok := assetNames[base]; !ok {
		return ImageRef{}
	}
	return ImageRef{Asset: base}
}

// stringTable resolves resource-name indirection fields (nameRes,
// descriptionRes) that remote records may carry instead of plain text.
var stringTable = map[string]string{
	"perfume_dior_sauvage":  "Dior Sauvage",
	"perfume_creed":         "Creed Aventus",
	"perfume_spice_bomb":    "Spicebomb",
	"perfume_versace":       "Versace Eros",
	"perfume_prada":         "Prada Luna Rossa",
	"perfume_tom_ford":      "Tom Ford Noir Extreme",
	"perfume_eternity":      "Calvin Klein Eternity",
	"perfume_tommy":         "Tommy Hilfiger Tommy",
	"perfume_gucci":         "Gucci Guilty",
	"perfume_hugo_boss":     "Hugo Boss Bottled",
	"perfume_yves":          "YSL La Nuit de L'Homme",
	"perfume_jean_paul":     "Jean Paul Gaultier Le Male",
	"perfume_bella_vita":    "Bella Vita Oud Intense",
	"perfume_chanel":        "Bleu de Chanel",
	"perfume_azzaro":        "Azzaro Wanted",
	"perfume_ysl":           "YSL Libre",
	"perfume_daisy":         "Marc Jacobs Daisy",
	"perfume_chance_chanel": "Chance Chanel",
	"perfume_flower_bomb":   "Viktor & Rolf Flowerbomb",
	"perfume_prada_milano":  "Prada Milano",
	"perfume_poison_dior":   "Dior Hypnotic Poison",
	"perfume_euphoria":      "Calvin Klein Euphoria",
	"perfume_billie_eilish": "Billie Eilish Eilish",
	"perfume_black_orchid":  "Tom Ford Black Orchid",
	"perfume_phlur":         "Phlur Missing Person",
	"perfume_burberry":      "Burberry Her",
	"perfume_adore":         "Dior J'adore",
	"perfume_byredo":        "Byredo Gypsy Water",
	"perfume_gucci_flora":   "Gucci Flora",
	"perfume_good_girl":     "Carolina Herrera Good Girl",
}

// ResolveString maps a resource key to its bundled display string. Unknown
// keys fall back to the key itself, matching how clients render them.
func ResolveString(key string) string {
	if value, ok := stringTable[key]; ok {
		return value
	}
	return key
}
