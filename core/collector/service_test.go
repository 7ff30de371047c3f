package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"news-intel-api/core/domain"
	"news-intel-api/core/interfaces"
)

// rssFeed builds a minimal RSS document with the given items
func rssFeed(items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title>` +
		strings.Join(items, "") + `</channel></rss>`
}

// rssItem builds one RSS item element
func rssItem(title, link, description string) string {
	return fmt.Sprintf(
		`<item><title>%s</title><link>%s</link><pubDate>Mon, 02 Jan 2006 15:04:05 +0530</pubDate><description>%s</description></item>`,
		title, link, description)
}

// newTestService builds a collector with an unthrottled limiter
func newTestService(deps interfaces.Dependencies, sources []Source) *Service {
	svc := NewService(deps, sources)
	svc.limiter = rate.NewLimiter(rate.Inf, 1)
	return svc
}

func testSources() []Source {
	return []Source{
		{
			Name: "Source A",
			Feeds: map[string]string{
				"technology": "https://a.example.com/rss/technology",
				"markets":    "https://a.example.com/rss/market",
			},
		},
		{
			Name: "Source B",
			Feeds: map[string]string{
				"economy": "https://b.example.com/rss/economy",
			},
		},
	}
}

func TestNewService_DefaultsSourceTable(t *testing.T) {
	svc := NewService(interfaces.Dependencies{}, nil)

	if len(svc.Sources()) != 3 {
		t.Errorf("default source table has %d sources, want 3", len(svc.Sources()))
	}
}

func TestCollect_EmptyIndustryKey(t *testing.T) {
	svc := newTestService(interfaces.Dependencies{}, testSources())

	_, err := svc.Collect(context.Background(), "")

	if err == nil {
		t.Error("Collect should return error for empty industry key")
	}
}

func TestCollect_ReturnsArticlesFromAllSources(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       rssFeed(rssItem("Headline", "https://news.example.com/1", "A summary")),
			}, nil
		},
	}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, testSources())

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("Collect returned %d articles, want 2 (one per source)", len(articles))
	}
	if articles[0].Source != "Source A" || articles[1].Source != "Source B" {
		t.Errorf("articles not in source-iteration order: %s, %s", articles[0].Source, articles[1].Source)
	}
}

func TestCollect_UnknownIndustryUsesFallbackFeeds(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       rssFeed(rssItem("Story", "https://news.example.com/x", "text")),
			}, nil
		},
	}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, testSources())

	articles, err := svc.Collect(context.Background(), "shipbuilding")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	// Source A falls back to technology, Source B to its only feed
	if len(articles) != 2 {
		t.Errorf("Collect returned %d articles, want 2", len(articles))
	}

	urls := client.requestedURLs()
	found := map[string]bool{}
	for _, u := range urls {
		found[u] = true
	}
	if !found["https://a.example.com/rss/technology"] {
		t.Error("Source A should fall back to its technology feed")
	}
	if !found["https://b.example.com/rss/economy"] {
		t.Error("Source B should fall back to its first available feed")
	}
}

func TestCollect_SourceFailureIsIsolated(t *testing.T) {
	logger := &mockLogger{}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "a.example.com") {
				return nil, errors.New("connection reset")
			}
			return &mockResponse{
				statusCode: 200,
				body:       rssFeed(rssItem("Survivor", "https://news.example.com/ok", "text")),
			}, nil
		},
	}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client, Logger: logger}, testSources())

	articles, err := svc.Collect(context.Background(), "economy")

	if err != nil {
		t.Fatalf("Collect should not fail when one source errors: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("Collect returned %d articles, want 1 from the healthy source", len(articles))
	}
	if articles[0].Source != "Source B" {
		t.Errorf("surviving article source = %s, want Source B", articles[0].Source)
	}
	if logger.errorCount() == 0 {
		t.Error("failed source should be logged")
	}
}

func TestCollect_Non200StatusIsIsolated(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "a.example.com") {
				return &mockResponse{statusCode: 503}, nil
			}
			return &mockResponse{
				statusCode: 200,
				body:       rssFeed(rssItem("Up", "https://news.example.com/up", "text")),
			}, nil
		},
	}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, testSources())

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("Collect returned %d articles, want 1", len(articles))
	}
}

func TestCollect_MalformedFeedIsIsolated(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "a.example.com") {
				return &mockResponse{statusCode: 200, body: "this is not XML"}, nil
			}
			return &mockResponse{
				statusCode: 200,
				body:       rssFeed(rssItem("Fine", "https://news.example.com/fine", "text")),
			}, nil
		},
	}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, testSources())

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("Collect returned %d articles, want 1", len(articles))
	}
}

func TestCollect_AllSourcesFailYieldsEmptyList(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("network down")
		},
	}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, testSources())

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("empty collection is a valid non-error outcome, got: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("Collect returned %d articles, want 0", len(articles))
	}
}

func TestCollect_CapsArticlesPerSource(t *testing.T) {
	items := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, rssItem(
			fmt.Sprintf("Story %d", i),
			fmt.Sprintf("https://news.example.com/%d", i),
			"text"))
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: rssFeed(items...)}, nil
		},
	}
	sources := []Source{{Name: "Big", Feeds: map[string]string{"technology": "https://big.example.com/rss"}}}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, sources)

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != maxArticlesPerSource {
		t.Errorf("Collect returned %d articles, want %d", len(articles), maxArticlesPerSource)
	}
}

func TestCollect_DropsIncompleteEntries(t *testing.T) {
	body := rssFeed(
		rssItem("", "https://news.example.com/notitle", "text"),
		`<item><title>No Link</title><description>text</description></item>`,
		rssItem("Complete", "https://news.example.com/ok", "text"),
	)
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	sources := []Source{{Name: "S", Feeds: map[string]string{"technology": "https://s.example.com/rss"}}}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, sources)

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	for _, a := range articles {
		if a.Title == "" || a.Link == "" {
			t.Errorf("incomplete article passed the filter: %+v", a)
		}
	}
	if len(articles) != 1 {
		t.Errorf("Collect returned %d articles, want 1", len(articles))
	}
}

func TestCollect_CapAppliesToRawEntries(t *testing.T) {
	// 10 entries with an incomplete one in third position. Only the first
	// 8 raw entries are considered, so the drop shrinks the batch to 7
	// instead of pulling entry 9 in.
	items := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		title := fmt.Sprintf("Story %d", i)
		if i == 2 {
			title = ""
		}
		items = append(items, rssItem(title, fmt.Sprintf("https://news.example.com/%d", i), "text"))
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: rssFeed(items...)}, nil
		},
	}
	sources := []Source{{Name: "S", Feeds: map[string]string{"technology": "https://s.example.com/rss"}}}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, sources)

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != maxArticlesPerSource-1 {
		t.Errorf("Collect returned %d articles, want %d", len(articles), maxArticlesPerSource-1)
	}
	for _, a := range articles {
		if a.Title == "Story 8" || a.Title == "Story 9" {
			t.Errorf("entry beyond the raw-entry window was collected: %q", a.Title)
		}
	}
}

func TestCollect_NormalizesSummaries(t *testing.T) {
	long := strings.Repeat("x", 400)
	body := rssFeed(rssItem("HTML", "https://news.example.com/html",
		"&lt;p&gt;Clean &lt;b&gt;me&lt;/b&gt;&lt;/p&gt;") +
		rssItem("Long", "https://news.example.com/long", long))
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	sources := []Source{{Name: "S", Feeds: map[string]string{"technology": "https://s.example.com/rss"}}}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client}, sources)

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("Collect returned %d articles, want 2", len(articles))
	}
	if articles[0].Summary != "Clean me" {
		t.Errorf("summary not stripped of HTML: %q", articles[0].Summary)
	}
	if len(articles[1].Summary) != summaryMaxChars+3 || !strings.HasSuffix(articles[1].Summary, "...") {
		t.Errorf("summary not truncated to %d chars with marker: %d", summaryMaxChars, len(articles[1].Summary))
	}
}

func TestCollect_InfersCategoryFromFeedURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://s.example.com/rss/technology", "Technology"},
		{"https://s.example.com/rss/market", "Markets"},
		{"https://s.example.com/rss/economy", "Economy"},
		{"https://s.example.com/rss/companies", "Industry"},
		{"https://s.example.com/rss/industry-news", "Industry"},
		{"https://s.example.com/rss/13352306.cms", "General"},
	}

	for _, tt := range tests {
		if got := categoryFromURL(tt.url); got != tt.expected {
			t.Errorf("categoryFromURL(%s) = %s, want %s", tt.url, got, tt.expected)
		}
	}
}

func TestCollect_UsesCachedArticles(t *testing.T) {
	cached := []domain.Article{{
		Title:  "From Cache",
		Link:   "https://news.example.com/cached",
		Source: "S",
	}}
	data, _ := json.Marshal(cached)

	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return data, nil
		},
	}
	client := &mockHTTPClient{}
	sources := []Source{{Name: "S", Feeds: map[string]string{"technology": "https://s.example.com/rss"}}}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client, Cache: cache}, sources)

	articles, err := svc.Collect(context.Background(), "technology")

	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "From Cache" {
		t.Errorf("cached articles not used: %+v", articles)
	}
	if len(client.requestedURLs()) != 0 {
		t.Error("cache hit should skip the network fetch")
	}
}

func TestCollect_CachesFetchedArticles(t *testing.T) {
	var setKey string
	cache := &mockCache{
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			setKey = key
			return nil
		},
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       rssFeed(rssItem("Fresh", "https://news.example.com/fresh", "text")),
			}, nil
		},
	}
	sources := []Source{{Name: "S", Feeds: map[string]string{"technology": "https://s.example.com/rss"}}}
	svc := newTestService(interfaces.Dependencies{HTTPClient: client, Cache: cache}, sources)

	if _, err := svc.Collect(context.Background(), "technology"); err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if setKey != "feed:https://s.example.com/rss" {
		t.Errorf("cache key = %q, want feed-prefixed URL", setKey)
	}
}

func TestResolveFeedURL_ExplicitKey(t *testing.T) {
	src := Source{Feeds: map[string]string{
		"technology": "https://t",
		"economy":    "https://e",
	}}

	if url := src.ResolveFeedURL("economy"); url != "https://e" {
		t.Errorf("ResolveFeedURL = %s, want https://e", url)
	}
}

func TestResolveFeedURL_TechnologyFallback(t *testing.T) {
	src := Source{Feeds: map[string]string{
		"technology": "https://t",
		"economy":    "https://e",
	}}

	if url := src.ResolveFeedURL("healthcare"); url != "https://t" {
		t.Errorf("ResolveFeedURL = %s, want technology fallback https://t", url)
	}
}

func TestResolveFeedURL_FirstAvailableFallback(t *testing.T) {
	src := Source{Feeds: map[string]string{
		"markets": "https://m",
		"economy": "https://e",
	}}

	// Deterministic fallback: smallest key wins
	if url := src.ResolveFeedURL("healthcare"); url != "https://e" {
		t.Errorf("ResolveFeedURL = %s, want https://e", url)
	}
}

func TestResolveFeedURL_NoFeeds(t *testing.T) {
	src := Source{}

	if url := src.ResolveFeedURL("anything"); url != "" {
		t.Errorf("ResolveFeedURL = %s, want empty", url)
	}
}
