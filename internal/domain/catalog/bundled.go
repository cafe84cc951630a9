// internal/domain/catalog/bundled.go
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:embed perfumes.json
var bundledPerfumes []byte

// bundledRecord matches one entry of the packaged perfume list. The image
// field holds a bundled asset name, not a URL.
type bundledRecord struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Gender      string          `json:"gender"`
}

// BundledSource serves the perfume list shipped with the application,
// available without network access.
type BundledSource struct {
	path   string // optional override of the embedded asset
	logger *logrus.Logger
}

// NewBundledSource creates the bundled catalog source. An empty path uses
// the embedded asset.
func NewBundledSource(path string, logger *logrus.Logger) *BundledSource {
	return &BundledSource{path: path, logger: logger}
}

// Load parses the bundled perfume list. Records without a name are dropped
// with a diagnostic; a parse failure of the whole asset yields an empty
// list rather than an error.
func (s *BundledSource) Load(_ context.Context) []Item {
	raw := bundledPerfumes
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.logger.WithError(err).WithField("path", s.path).Error("failed to read bundled catalog override")
			return nil
		}
		raw = data
	}

	var records []bundledRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.WithError(err).Error("failed to parse bundled catalog")
		return nil
	}

	items := make([]Item, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			s.logger.WithField("index", i).Warn("skipping bundled record: missing name")
			continue
		}
		items = append(items, Item{
			ID:          rec.ID,
			Name:        rec.Name,
			Image:       ResolveAsset(rec.Image),
			Price:       rec.Price,
			Description: rec.Description,
			Gender:      NormalizeGender(rec.Gender),
		})
	}

	s.logger.WithField("count", len(items)).Debug("loaded bundled catalog")
	return items
}
