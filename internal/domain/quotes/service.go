// internal/domain/quotes/service.go
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Quote is one display-ready quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Keywords a quote must mention to be considered on-brand.
var keywords = []string{"perfume", "fragrance", "scent", "aroma"}

// fallback is the curated list served whenever the feed fails or nothing
// matches the keywords.
var fallback = []Quote{
	{Text: "A perfume is like a piece of clothing, a message, a way of presenting oneself — a costume that according to the person who wears it.", Author: "Paloma Picasso"},
	{Text: "Perfume is the art that makes memory speak.", Author: "Francis Kurkdjian"},
	{Text: "A woman's perfume tells more about her than her handwriting.", Author: "Christian Dior"},
	{Text: "Fragrance is the voice of inanimate things.", Author: "Mary Webb"},
	{Text: "A good fragrance is really a powerful cocktail of memories and emotion.", Author: "Jeffrey Stepakoff"},
}

// Service fetches quotes from the configured feed and filters them down
// to perfume-related ones.
type Service struct {
	feedURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewService creates a quotes service.
func NewService(feedURL string, timeout time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		feedURL: feedURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// feedEntry matches the feed's wire format.
type feedEntry struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Fetch returns up to limit perfume-related quotes. On any transport or
// parse failure, or when no quote matches the keywords, it returns the
// curated fallback instead; callers never see an error.
func (s *Service) Fetch(ctx context.Context, limit int) []Quote {
	if limit <= 0 {
		limit = len(fallback)
	}

	all, err := s.download(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("quotes feed unavailable, serving fallback")
		return truncate(fallback, limit)
	}

	filtered := make([]Quote, 0, len(all))
	for _, quote := range all {
		text := strings.ToLower(quote.Text)
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				filtered = append(filtered, quote)
				break
			}
		}
	}

	result := filtered
	if len(result) == 0 {
		result = fallback
	}
	s.logger.WithFields(logrus.Fields{
		"feed":     len(all),
		"filtered": len(filtered),
	}).Debug("quotes loaded")
	return truncate(result, limit)
}

func (s *Service) download(ctx context.Context) ([]Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
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

	var entries []feedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("invalid feed document: %w", err)
	}

	quotes := make([]Quote, 0, len(entries))
	for _, entry := range entries {
		text := strings.TrimSpace(entry.Q)
		author := strings.TrimSpace(entry.A)
		if text == "" || author == "" {
			continue
		}
		quotes = append(quotes, Quote{Text: text, Author: author})
	}
	return quotes, nil
}

func truncate(quotes []Quote, limit int) []Quote {
	if len(quotes) <= limit {
		return append([]Quote(nil), quotes...)
	}
	return append([]Quote(nil), quotes[:limit]...)
}
