// ABOUTME: Storage interface for persisting industry snapshots
// ABOUTME: Defines the replace-on-write persistence contract per industry key

package interfaces

import (
	"context"

	"news-intel-api/core/domain"
)

// SnapshotStorage defines the persistence contract for industry snapshots.
// Store fully replaces the article set for a key; concurrent stores for the
// same key are serialized by the implementation.
type SnapshotStorage interface {
	// Store replaces the snapshot for industry with the given articles,
	// merging per-article insights from analysis when present. analysis
	// may be nil. Returns the number of articles stored.
	Store(ctx context.Context, articles []domain.Article, industry string, analysis *domain.AnalysisResult) (int, error)

	// GetArticles returns the stored article set for an industry,
	// most recently scraped first. An unknown key yields an empty set.
	GetArticles(ctx context.Context, industry string) ([]domain.Article, error)

	// GetStats returns the aggregate stats for every industry with a snapshot
	GetStats(ctx context.Context) (map[string]domain.IndustryStats, error)

	// ListIndustries returns every industry key holding stored articles
	ListIndustries(ctx context.Context) ([]string, error)
}
