// ABOUTME: Static feed source configuration mapping industries to RSS URLs
// ABOUTME: Adding a source or industry is a configuration change, not a code change

package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Source is one configured news provider with its per-industry feeds
type Source struct {
	// Name identifies the provider in articles and logs
	Name string `json:"name"`

	// BaseURL is the provider's site root
	BaseURL string `json:"base_url"`

	// Feeds maps an industry key to the provider's RSS URL for it
	Feeds map[string]string `json:"feeds"`
}

// ResolveFeedURL returns the feed URL for an industry key. A source without
// an explicit feed for the key falls back to its technology feed, then to its
// first available feed (smallest key, to keep resolution deterministic).
// Every configured source therefore contributes to every requested industry.
func (s Source) ResolveFeedURL(industry string) string {
	if url, ok := s.Feeds[industry]; ok {
		return url
	}
	if url, ok := s.Feeds["technology"]; ok {
		return url
	}

	keys := make([]string, 0, len(s.Feeds))
	for key := range s.Feeds {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return s.Feeds[keys[0]]
}

// LoadSourcesFile reads a source table from a JSON file, overriding the
// built-in defaults.
func LoadSourcesFile(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("sources file %s defines no sources", path)
	}

	return sources, nil
}

// DefaultSources returns the built-in source table covering India's major
// business publications.
func DefaultSources() []Source {
	return []Source{
		{
			Name:    "Economic Times",
			BaseURL: "https://economictimes.indiatimes.com",
			Feeds: map[string]string{
				"technology": "https://economictimes.indiatimes.com/rssfeeds/13352306.cms",
				"markets":    "https://economictimes.indiatimes.com/rssfeeds/1977021501.cms",
				"industry":   "https://economictimes.indiatimes.com/rssfeeds/13358071.cms",
				"economy":    "https://economictimes.indiatimes.com/rssfeeds/1898055174.cms",
			},
		},
		{
			Name:    "Business Standard",
			BaseURL: "https://www.business-standard.com",
			Feeds: map[string]string{
				"technology": "https://www.business-standard.com/rss/technology.rss",
				"economy":    "https://www.business-standard.com/rss/economy.rss",
				"markets":    "https://www.business-standard.com/rss/markets.rss",
				"companies":  "https://www.business-standard.com/rss/companies.rss",
			},
		},
		{
			Name:    "Mint",
			BaseURL: "https://www.livemint.com",
			Feeds: map[string]string{
				"technology": "https://www.livemint.com/rss/technology",
				"companies":  "https://www.livemint.com/rss/companies",
				"markets":    "https://www.livemint.com/rss/market",
				"economy":    "https://www.livemint.com/rss/politics",
			},
		},
	}
}
