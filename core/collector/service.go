// ABOUTME: Feed collector service handles multi-source news collection
// ABOUTME: Provides per-source fault isolation, normalization and rate pacing

package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"news-intel-api/core/domain"
	coreerrors "news-intel-api/core/errors"
	"news-intel-api/core/interfaces"
	htmlutil "news-intel-api/pkg/utils/html"
)

const (
	// maxArticlesPerSource bounds downstream analysis cost per run
	maxArticlesPerSource = 8

	// summaryMaxChars is the character budget for normalized summaries
	summaryMaxChars = 300

	// feedCacheTTL is how long a fetched feed's articles stay cached
	feedCacheTTL = 15 * time.Minute
)

// Service collects and normalizes articles from the configured sources
type Service struct {
	deps    interfaces.Dependencies
	sources []Source
	limiter *rate.Limiter
	now     func() time.Time
}

// NewService creates a collector over the given source table. A nil or empty
// table falls back to the built-in defaults.
func NewService(deps interfaces.Dependencies, sources []Source) *Service {
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	return &Service{
		deps:    deps,
		sources: sources,
		// One fetch per second across sources, matching the original
		// one-second pause between provider requests.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		now:     time.Now,
	}
}

// Sources returns the configured source table
func (s *Service) Sources() []Source {
	return s.sources
}

// Collect fetches and normalizes articles from every configured source for
// the industry key. Unknown keys resolve through each source's feed fallback
// chain. A failing source is logged and contributes zero articles; the
// result is the concatenation of the remaining sources' articles in
// source-iteration order. An empty result is a valid non-error outcome.
func (s *Service) Collect(ctx context.Context, industryKey string) ([]domain.Article, error) {
	if industryKey == "" {
		return nil, errors.New("industry key cannot be empty")
	}

	// Per-source results are indexed by source position so that the
	// concatenation order stays deterministic despite concurrent fetches.
	results := make([][]domain.Article, len(s.sources))
	var wg sync.WaitGroup

	for i, source := range s.sources {
		wg.Add(1)
		go func(idx int, src Source) {
			defer wg.Done()

			feedURL := src.ResolveFeedURL(industryKey)
			if feedURL == "" {
				s.logWarn("Source has no feeds configured", map[string]interface{}{
					"source": src.Name,
				})
				return
			}

			articles, err := s.collectSource(ctx, src, feedURL)
			if err != nil {
				s.logError("Failed to collect from source", map[string]interface{}{
					"source":   src.Name,
					"feed_url": feedURL,
					"error":    err.Error(),
				})
				return
			}
			results[idx] = articles
		}(i, source)
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	collected := make([]domain.Article, 0)
	for _, articles := range results {
		collected = append(collected, articles...)
	}

	s.logInfo("Collection completed", map[string]interface{}{
		"industry": industryKey,
		"articles": len(collected),
		"sources":  len(s.sources),
	})

	return collected, nil
}

// collectSource fetches one source's feed and returns its normalized,
// capped article list.
func (s *Service) collectSource(ctx context.Context, source Source, feedURL string) ([]domain.Article, error) {
	if cached := s.getCachedArticles(ctx, feedURL); cached != nil {
		return cached, nil
	}

	// Pace provider requests; a cancelled wait counts as a fetch failure.
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &coreerrors.SourceFetchError{Source: source.Name, FeedURL: feedURL, Err: err}
	}

	body, err := s.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, &coreerrors.SourceFetchError{Source: source.Name, FeedURL: feedURL, Err: err}
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &coreerrors.SourceFetchError{Source: source.Name, FeedURL: feedURL, Err: err}
	}

	articles := s.normalizeEntries(parsed, source, feedURL)
	_ = s.cacheArticles(ctx, feedURL, articles)

	return articles, nil
}

// fetchFeed retrieves the raw feed body over HTTP
func (s *Service) fetchFeed(ctx context.Context, feedURL string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	return io.ReadAll(resp.Body())
}

// normalizeEntries converts feed entries into domain articles. The cap
// applies to the raw entries considered, not the articles kept, so an
// incomplete entry in the window never pulls a later one in.
func (s *Service) normalizeEntries(feed *gofeed.Feed, source Source, feedURL string) []domain.Article {
	category := categoryFromURL(feedURL)
	scrapedAt := s.now()

	items := feed.Items
	if len(items) > maxArticlesPerSource {
		items = items[:maxArticlesPerSource]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		article := domain.Article{
			Title:     strings.TrimSpace(item.Title),
			Link:      item.Link,
			Published: item.Published,
			Summary:   normalizeSummary(item.Description),
			Source:    source.Name,
			Category:  category,
			ScrapedAt: scrapedAt,
		}
		if article.Published == "" {
			article.Published = "No Date"
		}

		// Incomplete records never reach analysis or storage
		if !article.IsComplete() {
			continue
		}

		articles = append(articles, article)
	}

	return articles
}

// normalizeSummary strips markup and truncates to the character budget
func normalizeSummary(summary string) string {
	clean := htmlutil.StripHTML(summary)
	if clean == "" {
		return "Summary not available"
	}
	return htmlutil.Truncate(clean, summaryMaxChars)
}

// categoryFromURL infers a canonical category label from the feed URL
func categoryFromURL(feedURL string) string {
	lower := strings.ToLower(feedURL)
	switch {
	case strings.Contains(lower, "technology"):
		return "Technology"
	case strings.Contains(lower, "market"):
		return "Markets"
	case strings.Contains(lower, "economy"):
		return "Economy"
	case strings.Contains(lower, "companies"), strings.Contains(lower, "industry"):
		return "Industry"
	default:
		return "General"
	}
}

// getCachedArticles returns a previously collected article list for a feed
// URL, or nil on any miss or cache error.
func (s *Service) getCachedArticles(ctx context.Context, feedURL string) []domain.Article {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(feedURL))
	if err != nil || data == nil {
		return nil
	}

	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil
	}
	return articles
}

// cacheArticles stores a collected article list for a feed URL
func (s *Service) cacheArticles(ctx context.Context, feedURL string, articles []domain.Article) error {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, cacheKey(feedURL), data, feedCacheTTL)
}

func cacheKey(feedURL string) string {
	return "feed:" + feedURL
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
