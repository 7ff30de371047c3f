// ABOUTME: Analysis engine sends bounded article batches to a language model
// ABOUTME: Converts transport and contract failures into degraded or fallback results

package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"news-intel-api/core/domain"
	"news-intel-api/core/interfaces"
	htmlutil "news-intel-api/pkg/utils/html"
)

const (
	// maxAnalysisArticles bounds the batch sent to the model
	maxAnalysisArticles = 15

	// rawAnalysisMaxChars caps preserved raw text in degraded results
	rawAnalysisMaxChars = 500
)

// Engine runs one analysis per call over an article batch. The model call is
// the only non-deterministic step in the pipeline; everything downstream of
// the returned result is deterministic so tests can substitute a stub.
type Engine struct {
	deps      interfaces.Dependencies
	generator interfaces.TextGenerator
	now       func() time.Time
}

// NewEngine creates an analysis engine over a text-generation capability.
// A nil generator is allowed; every call then takes the fallback path.
func NewEngine(deps interfaces.Dependencies, generator interfaces.TextGenerator) *Engine {
	return &Engine{
		deps:      deps,
		generator: generator,
		now:       time.Now,
	}
}

// Analyze scores and summarizes a batch of articles for an industry focus.
// Only the first maxAnalysisArticles articles are sent to the model; the
// TopStories article IDs are 1-based positions within that subset. Analyze
// never fails: transport errors produce a fallback result, non-JSON
// responses a degraded one.
func (e *Engine) Analyze(ctx context.Context, articles []domain.Article, industryFocus string) domain.AnalysisResult {
	subset := articles
	if len(subset) > maxAnalysisArticles {
		subset = subset[:maxAnalysisArticles]
	}

	if e.generator == nil {
		e.logWarn("No text generator configured, using fallback analysis", nil)
		return e.fallbackAnalysis(articles, subset, industryFocus)
	}

	prompt := buildPrompt(subset, industryFocus, e.now())

	raw, err := e.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		e.logError("Model invocation failed, using fallback analysis", map[string]interface{}{
			"industry": industryFocus,
			"error":    err.Error(),
		})
		return e.fallbackAnalysis(articles, subset, industryFocus)
	}

	result, ok := e.parseResponse(raw)
	if !ok {
		e.logWarn("Model response violated the output contract, degrading", map[string]interface{}{
			"industry": industryFocus,
		})
		return e.degradedAnalysis(raw, articles, subset, industryFocus)
	}

	// The model's JSON is trusted for structure, but provenance is always
	// engine-computed; model-returned counts never overwrite it.
	result.ProcessingInfo = e.processingInfo(domain.VariantFull, articles, subset, industryFocus)
	return result
}

// parseResponse attempts to interpret the model output as a schema-valid
// AnalysisResult.
func (e *Engine) parseResponse(raw string) (domain.AnalysisResult, bool) {
	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return domain.AnalysisResult{}, false
	}

	// A response carrying neither stories nor a summary has nothing the
	// compiler can use; treat it as a contract violation.
	if len(result.TopStories) == 0 && result.ExecutiveSummary == "" {
		return domain.AnalysisResult{}, false
	}

	return result, true
}

// degradedAnalysis preserves the raw model text under a bounded field and
// synthesizes the summary from counts.
func (e *Engine) degradedAnalysis(raw string, articles, subset []domain.Article, industryFocus string) domain.AnalysisResult {
	info := e.processingInfo(domain.VariantDegraded, articles, subset, industryFocus)
	info.Note = "structured analysis synthesized from non-JSON model response"

	return domain.AnalysisResult{
		Metadata: domain.AnalysisMetadata{
			IndustryFocus:    industryFocus,
			AnalysisDate:     e.now().Format("2006-01-02 15:04"),
			ArticlesAnalyzed: len(subset),
			ConfidenceLevel:  domain.ConfidenceMedium,
		},
		RawAnalysis: htmlutil.Truncate(raw, rawAnalysisMaxChars),
		ExecutiveSummary: fmt.Sprintf("Analyzed %d %s articles from Indian business media",
			len(articles), industryFocus),
		ProcessingInfo: info,
	}
}

// fallbackAnalysis is computed purely from the input batch and has no
// external dependency. It is the floor guarantee that a report can always
// be produced from collected articles.
func (e *Engine) fallbackAnalysis(articles, subset []domain.Article, industryFocus string) domain.AnalysisResult {
	sources := domain.DistinctSources(articles)
	categories := domain.DistinctCategories(articles)

	info := e.processingInfo(domain.VariantFallback, articles, subset, industryFocus)
	info.Note = "basic analysis produced without a model call"

	return domain.AnalysisResult{
		Metadata: domain.AnalysisMetadata{
			IndustryFocus:    industryFocus,
			AnalysisDate:     e.now().Format("2006-01-02 15:04"),
			ArticlesAnalyzed: len(articles),
			ConfidenceLevel:  domain.ConfidenceBasic,
		},
		BasicStatistics: &domain.BasicStatistics{
			TotalArticles: len(articles),
			Sources:       sources,
			Categories:    categories,
		},
		ExecutiveSummary: fmt.Sprintf("Collected %d %s-related articles from %d major Indian business publications",
			len(articles), industryFocus, len(sources)),
		FallbackInsights: []string{
			fmt.Sprintf("Comprehensive coverage from %s", joinOr(sources, "configured sources")),
			fmt.Sprintf("Articles span %s categories", joinOr(categories, "general")),
			"Real-time monitoring of industry developments",
		},
		ProcessingInfo: info,
	}
}

// processingInfo builds the engine-owned provenance block
func (e *Engine) processingInfo(variant string, articles, subset []domain.Article, industryFocus string) domain.ProcessingInfo {
	info := domain.ProcessingInfo{
		Variant:                variant,
		TotalArticlesCollected: len(articles),
		ArticlesAnalyzed:       len(subset),
		ProcessingTimestamp:    e.now().Format(time.RFC3339),
		IndustryFocus:          industryFocus,
	}
	if e.generator != nil {
		info.AIModel = e.generator.Model()
	}
	return info
}

// joinOr joins items with commas, or returns the fallback when empty
func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	joined := items[0]
	for _, item := range items[1:] {
		joined += ", " + item
	}
	return joined
}

func (e *Engine) logWarn(msg string, fields map[string]interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Warn(msg, fields)
	}
}

func (e *Engine) logError(msg string, fields map[string]interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Error(msg, fields)
	}
}
