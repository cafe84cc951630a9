// internal/domain/catalog/remote.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RemoteSource fetches the hosted perfume document over HTTPS. A
// successful result is cached for the remainder of the process lifetime;
// there is no TTL and no revalidation.
type RemoteSource struct {
	url    string
	client *http.Client
	logger *logrus.Logger

	mu     sync.Mutex
	cached []Item
	ready  bool
}

// NewRemoteSource creates the remote catalog source.
func NewRemoteSource(url string, timeout time.Duration, logger *logrus.Logger) *RemoteSource {
	return &RemoteSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load returns the remote perfume list. Any transport or top-level parse
// failure yields an empty list, which callers must treat as "source
// unavailable" rather than "catalog is empty".
func (s *RemoteSource) Load(ctx context.Context) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.cached
	}

	items, err := s.fetch(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("url", s.url).Warn("remote catalog fetch failed")
		return nil
	}

	s.cached = items
	s.ready = true
	s.logger.WithField("count", len(items)).Debug("loaded remote catalog")
	return items
}

func (s *RemoteSource) fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	items := make([]Item, 0, len(records))
	for i, record := range records {
		item, skip := s.normalize(record, i)
		if skip != "" {
			s.logger.WithField("record", describeSkip(i, skip)).Warn("skipping remote record")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// normalize maps one raw record onto an Item, returning a non-empty skip
// reason for records that cannot be used.
func (s *RemoteSource) normalize(record map[string]any, index int) (Item, string) {
	name := extractFirst(record, nameExtractors)
	if name == "" {
		return Item{}, "missing name/title/nameRes"
	}

	imageRaw := extractFirst(record, imageExtractors)
	if imageRaw == "" {
		return Item{}, "missing image field"
	}

	var image ImageRef
	if strings.HasPrefix(strings.ToLower(imageRaw), "http") {
		image = ImageRef{URL: imageRaw}
	} else {
		// Unknown asset names leave the reference empty; the record is
		// still usable.
		image = ResolveAsset(imageRaw)
	}

	return Item{
		ID:          extractID(record, index),
		Name:        name,
		Image:       image,
		Price:       extractPrice(record),
		Description: extractFirst(record, descriptionExtractors),
		Gender:      NormalizeGender(extractFirst(record, genderExtractors)),
	}, ""
}
