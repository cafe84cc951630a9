// internal/domain/catalog/item.go
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Gender is the catalog's audience segment.
type Gender string

const (
	GenderMen     Gender = "men"
	GenderWomen   Gender = "women"
	GenderUnknown Gender = ""
)

// NormalizeGender maps free-form gender tokens onto the catalog enum.
func NormalizeGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "men", "male", "m":
		return GenderMen
	case "women", "female", "f":
		return GenderWomen
	default:
		return GenderUnknown
	}
}

// ImageRef points at either a bundled image asset or a remote URL.
// At most one of the two fields is set.
type ImageRef struct {
	Asset string `json:"asset,omitempty"`
	URL   string `json:"url,omitempty"`
}

// IsZero reports whether the reference points at nothing.
func (r ImageRef) IsZero() bool {
	return r.Asset == "" && r.URL == ""
}

// Item is one purchasable perfume in the reconciled catalog.
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Image       ImageRef        `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Gender      Gender          `json:"gender,omitempty"`
}

// NormalizedKey is the case-insensitive, trimmed (name, gender) pair used
// for duplicate detection across sources.
func (i Item) NormalizedKey() string {
	return strings.ToLower(strings.TrimSpace(i.Name)) + "|" +
		strings.ToLower(strings.TrimSpace(string(i.Gender)))
}
