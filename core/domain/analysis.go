// ABOUTME: AnalysisResult domain model for one analysis run over an article batch
// ABOUTME: Covers the full, degraded and fallback variants produced by the engine

package domain

// Analysis variants carried in ProcessingInfo. Consumers switch on the
// variant instead of probing field presence.
const (
	// VariantFull means the model returned schema-valid JSON
	VariantFull = "full"

	// VariantDegraded means the model responded but not with valid JSON
	VariantDegraded = "degraded"

	// VariantFallback means the model was never reached
	VariantFallback = "fallback"
)

// Confidence levels reported in AnalysisMetadata
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceBasic  = "basic"
)

// AnalysisMetadata describes one analysis run
type AnalysisMetadata struct {
	IndustryFocus    string `json:"industry_focus"`
	AnalysisDate     string `json:"analysis_date"`
	ArticlesAnalyzed int    `json:"articles_analyzed"`
	ConfidenceLevel  string `json:"confidence_level"`
}

// TopStory is one scored article reference. ArticleID is a 1-based index
// into the analyzed subset, not the full collected set.
type TopStory struct {
	ArticleID      int    `json:"article_id"`
	RelevanceScore int    `json:"relevance_score"`
	ImpactLevel    string `json:"impact_level,omitempty"`
	KeyInsights    string `json:"key_insights,omitempty"`
}

// TrendAnalysis groups the thematic lists identified by the model
type TrendAnalysis struct {
	EmergingTrends []string `json:"emerging_trends,omitempty"`
	MarketDynamics []string `json:"market_dynamics,omitempty"`
	RiskFactors    []string `json:"risk_factors,omitempty"`
}

// BasicStatistics is the fallback variant's computed batch summary
type BasicStatistics struct {
	TotalArticles int      `json:"total_articles"`
	Sources       []string `json:"sources"`
	Categories    []string `json:"categories"`
}

// ProcessingInfo is the engine-added provenance block. The engine always
// overlays its own counts; model-returned provenance never overwrites it.
type ProcessingInfo struct {
	Variant                string `json:"analysis_variant"`
	TotalArticlesCollected int    `json:"total_articles_collected"`
	ArticlesAnalyzed       int    `json:"articles_analyzed"`
	ProcessingTimestamp    string `json:"processing_timestamp"`
	AIModel                string `json:"ai_model,omitempty"`
	IndustryFocus          string `json:"industry_focus"`
	Note                   string `json:"note,omitempty"`
}

// AnalysisResult is the structured output of one analysis run. Every field
// apart from Metadata and ProcessingInfo is optional; downstream consumers
// must supply textual defaults.
type AnalysisResult struct {
	Metadata                 AnalysisMetadata `json:"analysis_metadata"`
	TopStories               []TopStory       `json:"top_stories,omitempty"`
	TrendAnalysis            *TrendAnalysis   `json:"trend_analysis,omitempty"`
	ExecutiveSummary         string           `json:"executive_summary,omitempty"`
	StrategicRecommendations []string         `json:"strategic_recommendations,omitempty"`
	RawAnalysis              string           `json:"ai_raw_analysis,omitempty"`
	BasicStatistics          *BasicStatistics `json:"basic_statistics,omitempty"`
	FallbackInsights         []string         `json:"fallback_insights,omitempty"`
	ProcessingInfo           ProcessingInfo   `json:"processing_info"`
}

// InsightFor returns the key insight text for the 1-based article position,
// or an empty string when no top story references it.
func (r *AnalysisResult) InsightFor(position int) string {
	if r == nil {
		return ""
	}
	for _, story := range r.TopStories {
		if story.ArticleID == position {
			return story.KeyInsights
		}
	}
	return ""
}
