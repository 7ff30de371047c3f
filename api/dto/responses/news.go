// ABOUTME: Response DTOs for the news intelligence API endpoints
// ABOUTME: Maps domain articles and stats into JSON response shapes

package responses

import (
	"time"

	"news-intel-api/core/domain"
)

// ArticleResponse is the JSON shape of a stored article
type ArticleResponse struct {
	Title          string `json:"title"`
	Link           string `json:"link"`
	Published      string `json:"published"`
	Summary        string `json:"summary"`
	Source         string `json:"source"`
	Category       string `json:"category"`
	ScrapedAt      string `json:"scraped_at,omitempty"`
	RelevanceScore int    `json:"relevance_score"`
	AIInsights     string `json:"ai_insights,omitempty"`
}

// UpdateResponse is returned from a pipeline run
type UpdateResponse struct {
	Status      string `json:"status"`
	Industry    string `json:"industry"`
	Articles    int    `json:"articles"`
	StoredCount int    `json:"stored_count"`
	Report      string `json:"report,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
}

// SnapshotResponse is the stored snapshot for one industry
type SnapshotResponse struct {
	Industry string            `json:"industry"`
	Count    int               `json:"count"`
	Articles []ArticleResponse `json:"articles"`
}

// StatsEntry is the aggregate record for one industry
type StatsEntry struct {
	TotalArticles int      `json:"total_articles"`
	LastUpdated   string   `json:"last_updated"`
	TopSources    []string `json:"top_sources"`
}

// StatsResponse maps industry keys to their aggregate records
type StatsResponse struct {
	Industries map[string]StatsEntry `json:"industries"`
}

// IndustriesResponse lists every industry with a stored snapshot
type IndustriesResponse struct {
	Industries []string `json:"industries"`
}

// FromArticle converts a domain article to its response shape
func FromArticle(article domain.Article) ArticleResponse {
	resp := ArticleResponse{
		Title:          article.Title,
		Link:           article.Link,
		Published:      article.Published,
		Summary:        article.Summary,
		Source:         article.Source,
		Category:       article.Category,
		RelevanceScore: article.RelevanceScore,
		AIInsights:     article.AIInsights,
	}
	if !article.ScrapedAt.IsZero() {
		resp.ScrapedAt = article.ScrapedAt.Format(time.RFC3339)
	}
	return resp
}

// FromArticles converts a slice of domain articles
func FromArticles(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		out = append(out, FromArticle(article))
	}
	return out
}

// FromStats converts domain stats to the response shape
func FromStats(stats map[string]domain.IndustryStats) StatsResponse {
	resp := StatsResponse{Industries: make(map[string]StatsEntry, len(stats))}
	for industry, entry := range stats {
		out := StatsEntry{
			TotalArticles: entry.TotalArticles,
			TopSources:    entry.TopSources,
		}
		if out.TopSources == nil {
			out.TopSources = []string{}
		}
		if !entry.LastUpdated.IsZero() {
			out.LastUpdated = entry.LastUpdated.Format(time.RFC3339)
		}
		resp.Industries[industry] = out
	}
	return resp
}
