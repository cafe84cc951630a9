// internal/domain/catalog/extract.go
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// extractor names one way to pull a text field out of a raw remote record.
// Extractors run in declaration order; the first non-empty result wins.
type extractor struct {
	name string
	fn   func(record map[string]any) string
}

// plainField reads a string field verbatim.
func plainField(key string) extractor {
	return extractor{
		name: key,
		fn:   func(record map[string]any) string { return optString(record, key) },
	}
}

// resourceField reads a resource-key field and resolves it through the
// bundled string table.
func resourceField(key string) extractor {
	return extractor{
		name: key,
		fn: func(record map[string]any) string {
			if value := optString(record, key); value != "" {
				return ResolveString(value)
			}
			return ""
		},
	}
}

// Ordered extraction strategies for the remote document's loose schema.
var (
	nameExtractors = []extractor{
		plainField("name"),
		plainField("title"),
		resourceField("nameRes"),
	}
	imageExtractors = []extractor{
		plainField("image"),
		plainField("imageUrl"),
		plainField("imageRes"),
		plainField("posterName"),
		plainField("poster"),
		plainField("img"),
	}
	descriptionExtractors = []extractor{
		plainField("description"),
		plainField("desc"),
		resourceField("descriptionRes"),
	}
	genderExtractors = []extractor{
		plainField("gender"),
		plainField("category"),
		plainField("type"),
	}
)

// extractFirst runs the extractors in order and returns the first
// non-empty value.
func extractFirst(record map[string]any, extractors []extractor) string {
	for _, ex := range extractors {
		if value := ex.fn(record); value != "" {
			return value
		}
	}
	return ""
}

// optString returns the field as a string, or empty when absent or not a
// string.
func optString(record map[string]any, key string) string {
	value, ok := record[key]
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

// extractPrice accepts the price field as a JSON number or a numeric
// string, defaulting to zero for anything else.
func extractPrice(record map[string]any) decimal.Decimal {
	switch value := record["price"].(type) {
	case float64:
		return decimal.NewFromFloat(value)
	case string:
		price, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero
		}
		return price
	default:
		return decimal.Zero
	}
}

// extractID returns the record id, or the array index when absent.
func extractID(record map[string]any, index int) int {
	value, ok := record["id"]
	if !ok {
		return index
	}
	number, ok := value.(float64)
	if !ok {
		return index
	}
	return int(number)
}

// describeSkip labels a skipped record for diagnostics.
func describeSkip(index int, reason string) string {
	return fmt.Sprintf("index=%d: %s", index, reason)
}
