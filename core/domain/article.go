// ABOUTME: Article domain model representing one aggregated news item
// ABOUTME: Articles are created by the collector and immutable afterwards

package domain

import "time"

// Article represents a single news item collected from a feed source.
// Title and Link are mandatory; the collector discards entries missing
// either before they enter the pipeline.
type Article struct {
	// Title is the article headline
	Title string `json:"title"`

	// Link is the article URL and the identity key within a batch
	Link string `json:"link"`

	// Published is the source-provided date string, kept verbatim
	Published string `json:"published"`

	// Summary is the plain-text summary, HTML stripped and length-capped
	Summary string `json:"summary"`

	// Source is the name of the originating feed provider
	Source string `json:"source"`

	// Category is the label inferred from the feed URL
	Category string `json:"category"`

	// ScrapedAt is the capture timestamp
	ScrapedAt time.Time `json:"scraped_at"`

	// RelevanceScore is the stored per-article score (default 5)
	RelevanceScore int `json:"relevance_score,omitempty"`

	// AIInsights carries the insight text merged from an analysis run.
	// Only set on articles loaded from the snapshot store.
	AIInsights string `json:"ai_insights,omitempty"`
}

// IsComplete reports whether the article carries the mandatory fields
func (a Article) IsComplete() bool {
	return a.Title != "" && a.Link != ""
}

// DistinctSources returns the distinct source names in first-seen order
func DistinctSources(articles []Article) []string {
	seen := make(map[string]bool)
	sources := make([]string, 0)
	for _, a := range articles {
		if a.Source == "" || seen[a.Source] {
			continue
		}
		seen[a.Source] = true
		sources = append(sources, a.Source)
	}
	return sources
}

// DistinctCategories returns the distinct category labels in first-seen order
func DistinctCategories(articles []Article) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, a := range articles {
		category := a.Category
		if category == "" {
			category = "General"
		}
		if seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	return categories
}
