package pipeline

import (
	"context"

	"news-intel-api/core/domain"
)

// mockCollector is a mock implementation of the Collector interface
type mockCollector struct {
	articles []domain.Article
	err      error
	calls    int
}

func (m *mockCollector) Collect(ctx context.Context, industryKey string) ([]domain.Article, error) {
	m.calls++
	return m.articles, m.err
}

// mockAnalyzer is a mock implementation of the Analyzer interface
type mockAnalyzer struct {
	result   domain.AnalysisResult
	calls    int
	lastSeen []domain.Article
}

func (m *mockAnalyzer) Analyze(ctx context.Context, articles []domain.Article, industryFocus string) domain.AnalysisResult {
	m.calls++
	m.lastSeen = articles
	return m.result
}

// mockCompiler is a mock implementation of the Compiler interface
type mockCompiler struct {
	report string
	calls  int
}

func (m *mockCompiler) Compile(articles []domain.Article, analysis domain.AnalysisResult) string {
	m.calls++
	return m.report
}

// mockStore is a mock implementation of the SnapshotStorage interface
type mockStore struct {
	storeErr      error
	storeCalls    int
	lastArticles  []domain.Article
	lastIndustry  string
	lastAnalysis  *domain.AnalysisResult
	articlesByKey map[string][]domain.Article
}

func (m *mockStore) Store(ctx context.Context, articles []domain.Article, industry string, analysis *domain.AnalysisResult) (int, error) {
	m.storeCalls++
	m.lastArticles = articles
	m.lastIndustry = industry
	m.lastAnalysis = analysis
	if m.storeErr != nil {
		return 0, m.storeErr
	}
	return len(articles), nil
}

func (m *mockStore) GetArticles(ctx context.Context, industry string) ([]domain.Article, error) {
	return m.articlesByKey[industry], nil
}

func (m *mockStore) GetStats(ctx context.Context) (map[string]domain.IndustryStats, error) {
	return nil, nil
}

func (m *mockStore) ListIndustries(ctx context.Context) ([]string, error) {
	return nil, nil
}
