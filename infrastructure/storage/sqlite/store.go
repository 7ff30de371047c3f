// ABOUTME: SQLite-backed snapshot store holding the latest article set per industry
// ABOUTME: Store replaces the prior snapshot inside one transaction, serialized per key

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"news-intel-api/core/domain"
	coreerrors "news-intel-api/core/errors"
)

// defaultRelevanceScore is assigned to stored articles; the analysis's
// per-article insights are merged separately.
const defaultRelevanceScore = 5

// Store implements the SnapshotStorage interface using SQLite
type Store struct {
	db   *sql.DB
	path string

	// keyLocks serializes Store calls per industry key. Stores for
	// different keys proceed independently.
	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex
}

// NewStore opens (or creates) the snapshot database at path
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "news_database.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		path:     path,
		keyLocks: make(map[string]*sync.Mutex),
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the articles and stats tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			industry TEXT NOT NULL,
			title TEXT NOT NULL,
			summary TEXT,
			link TEXT,
			source TEXT,
			category TEXT,
			published TEXT,
			scraped_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			relevance_score INTEGER DEFAULT 5,
			ai_insights TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_articles_industry ON articles(industry);

		CREATE TABLE IF NOT EXISTS industry_stats (
			industry TEXT PRIMARY KEY,
			total_articles INTEGER DEFAULT 0,
			last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			top_sources TEXT
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// lockFor returns the mutex guarding one industry key
func (s *Store) lockFor(industry string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.keyLocks[industry]
	if !ok {
		lock = &sync.Mutex{}
		s.keyLocks[industry] = lock
	}
	return lock
}

// Store replaces the snapshot for an industry: within one transaction it
// deletes the existing articles for the key, inserts the new set in order,
// and upserts the stats row. Insight text is merged by matching each top
// story's 1-based article_id to the insertion position. On any failure the
// transaction rolls back and the previous snapshot stays intact.
func (s *Store) Store(ctx context.Context, articles []domain.Article, industry string, analysis *domain.AnalysisResult) (int, error) {
	if industry == "" {
		return 0, fmt.Errorf("industry key cannot be empty")
	}

	lock := s.lockFor(industry)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE industry = ?", industry); err != nil {
		return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (
			industry, title, summary, link,
			source, category, published, scraped_at,
			relevance_score, ai_insights
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
	}
	defer insert.Close()

	stored := 0
	for i, article := range articles {
		scrapedAt := article.ScrapedAt
		if scrapedAt.IsZero() {
			scrapedAt = time.Now()
		}

		// Position i+1 matches the analyzed-subset order; articles the
		// analysis never scored get an empty insight.
		insight := analysis.InsightFor(i + 1)

		_, err = insert.ExecContext(ctx,
			industry,
			article.Title,
			article.Summary,
			article.Link,
			article.Source,
			article.Category,
			article.Published,
			scrapedAt.Format(time.RFC3339),
			defaultRelevanceScore,
			insight,
		)
		if err != nil {
			return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
		}
		stored++
	}

	sources, err := json.Marshal(domain.DistinctSources(articles))
	if err != nil {
		return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO industry_stats (industry, total_articles, last_updated, top_sources)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(industry) DO UPDATE SET
			total_articles = excluded.total_articles,
			last_updated = excluded.last_updated,
			top_sources = excluded.top_sources
	`, industry, stored, time.Now().Format(time.RFC3339), string(sources))
	if err != nil {
		return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return 0, &coreerrors.PersistenceConflictError{Industry: industry, Err: err}
	}

	return stored, nil
}

// GetArticles returns the stored set for an industry, most recently scraped
// first. An unknown key yields an empty slice.
func (s *Store) GetArticles(ctx context.Context, industry string) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, summary, link, source, category, published,
		       scraped_at, relevance_score, ai_insights
		FROM articles
		WHERE industry = ?
		ORDER BY scraped_at DESC, id ASC
	`, industry)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var article domain.Article
		var scrapedAt string
		var insights sql.NullString

		err := rows.Scan(
			&article.Title,
			&article.Summary,
			&article.Link,
			&article.Source,
			&article.Category,
			&article.Published,
			&scrapedAt,
			&article.RelevanceScore,
			&insights,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}

		if t, err := time.Parse(time.RFC3339, scrapedAt); err == nil {
			article.ScrapedAt = t
		}
		article.AIInsights = insights.String

		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// GetStats returns the aggregate record for every industry with a snapshot
func (s *Store) GetStats(ctx context.Context) (map[string]domain.IndustryStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT industry, total_articles, last_updated, top_sources
		FROM industry_stats
		ORDER BY total_articles DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]domain.IndustryStats)
	for rows.Next() {
		var industry, lastUpdated string
		var total int
		var sourcesJSON sql.NullString

		if err := rows.Scan(&industry, &total, &lastUpdated, &sourcesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}

		entry := domain.IndustryStats{
			TotalArticles: total,
			TopSources:    []string{},
		}
		if t, err := time.Parse(time.RFC3339, lastUpdated); err == nil {
			entry.LastUpdated = t
		}
		if sourcesJSON.Valid {
			// Tolerate unreadable source lists rather than failing the read
			_ = json.Unmarshal([]byte(sourcesJSON.String), &entry.TopSources)
		}

		stats[industry] = entry
	}

	return stats, rows.Err()
}

// ListIndustries returns every industry key holding stored articles
func (s *Store) ListIndustries(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT industry FROM articles ORDER BY industry")
	if err != nil {
		return nil, fmt.Errorf("failed to query industries: %w", err)
	}
	defer rows.Close()

	industries := make([]string, 0)
	for rows.Next() {
		var industry string
		if err := rows.Scan(&industry); err != nil {
			return nil, fmt.Errorf("failed to scan industry row: %w", err)
		}
		industries = append(industries, industry)
	}

	return industries, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
