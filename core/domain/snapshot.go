// ABOUTME: IndustrySnapshot domain model for the persisted per-industry state
// ABOUTME: Exactly one snapshot exists per industry key; writes fully replace it

package domain

import "time"

// IndustryStats is the aggregate record kept per industry key
type IndustryStats struct {
	// TotalArticles is the article count of the latest snapshot
	TotalArticles int `json:"total_articles"`

	// LastUpdated is when the snapshot was last written
	LastUpdated time.Time `json:"last_updated"`

	// TopSources lists the distinct source names in the set
	TopSources []string `json:"top_sources"`
}

// IndustrySnapshot is the durable state for one industry key. Writing a new
// snapshot replaces the previous article set entirely.
type IndustrySnapshot struct {
	Industry      string    `json:"industry"`
	Articles      []Article `json:"articles"`
	TotalArticles int       `json:"total_articles"`
	LastUpdated   time.Time `json:"last_updated"`
	TopSources    []string  `json:"top_sources"`
}
