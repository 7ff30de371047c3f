// ABOUTME: Report compiler renders the fixed-section executive report text
// ABOUTME: Pure and deterministic; tolerates every analysis variant the engine produces

package report

import (
	"fmt"
	"strings"
	"time"

	"news-intel-api/core/domain"
	htmlutil "news-intel-api/pkg/utils/html"
)

const (
	// linkMaxChars caps rendered article links
	linkMaxChars = 180

	// summaryMaxChars caps rendered summaries in the no-top-stories branch
	summaryMaxChars = 250

	// maxTrendItems caps trend and dynamics lists per section
	maxTrendItems = 3

	// maxTopArticles caps the rendered top-articles section
	maxTopArticles = 3

	// maxRecommendations caps the recommendations section
	maxRecommendations = 4
)

const divider = "==============================================================================="

// Compiler renders executive reports. The injected clock is the only source
// of variance; identical inputs with a frozen clock yield byte-identical text.
type Compiler struct {
	now func() time.Time
}

// NewCompiler creates a compiler using the wall clock
func NewCompiler() *Compiler {
	return NewCompilerWithClock(time.Now)
}

// NewCompilerWithClock creates a compiler with an injected clock for
// deterministic output.
func NewCompilerWithClock(now func() time.Time) *Compiler {
	return &Compiler{now: now}
}

// Compile renders the report for a collected article set and its analysis.
// It is a pure function of its inputs and the clock: no I/O, no failure
// path. Every analysis field is treated as optional with a textual default.
func (c *Compiler) Compile(articles []domain.Article, analysis domain.AnalysisResult) string {
	reportTime := c.now().Format("2006-01-02 15:04:05 IST")

	var b strings.Builder
	c.writeHeader(&b, analysis, reportTime)
	c.writeExecutiveSummary(&b, articles, analysis)
	c.writeCollectionSummary(&b, articles)
	c.writeTrends(&b, analysis)
	c.writeTopArticles(&b, articles, analysis)
	c.writeRecommendations(&b, analysis)
	c.writeFooter(&b, articles, reportTime)

	return b.String()
}

func (c *Compiler) writeHeader(b *strings.Builder, analysis domain.AnalysisResult, reportTime string) {
	industry := analysis.Metadata.IndustryFocus
	if industry == "" {
		industry = analysis.ProcessingInfo.IndustryFocus
	}
	if industry == "" {
		industry = "business"
	}

	model := analysis.ProcessingInfo.AIModel
	if model == "" {
		model = "none (fallback analysis)"
	}

	confidence := analysis.Metadata.ConfidenceLevel
	if confidence == "" {
		confidence = "completed"
	}

	b.WriteString(divider + "\n")
	b.WriteString("                    AI-POWERED DAILY NEWS INTELLIGENCE\n")
	b.WriteString("                           EXECUTIVE BRIEFING\n")
	b.WriteString(divider + "\n\n")
	fmt.Fprintf(b, "REPORT DATE: %s\n", reportTime)
	fmt.Fprintf(b, "INDUSTRY FOCUS: %s\n", strings.ToUpper(industry))
	fmt.Fprintf(b, "AI MODEL: %s\n", model)
	fmt.Fprintf(b, "ANALYSIS STATUS: %s\n\n", strings.ToUpper(confidence))
}

func (c *Compiler) writeExecutiveSummary(b *strings.Builder, articles []domain.Article, analysis domain.AnalysisResult) {
	summary := analysis.ExecutiveSummary
	if summary == "" {
		summary = fmt.Sprintf("Successfully analyzed %d articles from multiple business sources", len(articles))
	}

	b.WriteString(divider + "\n\n")
	b.WriteString("EXECUTIVE SUMMARY\n")
	b.WriteString(summary + "\n\n")
}

func (c *Compiler) writeCollectionSummary(b *strings.Builder, articles []domain.Article) {
	sources := domain.DistinctSources(articles)
	categories := domain.DistinctCategories(articles)

	b.WriteString(divider + "\n\n")
	b.WriteString("DATA COLLECTION SUMMARY\n")
	fmt.Fprintf(b, "- Total Articles Collected: %d\n", len(articles))
	fmt.Fprintf(b, "- News Sources: %s\n", strings.Join(sources, ", "))
	fmt.Fprintf(b, "- Categories Covered: %s\n", strings.Join(categories, ", "))
	b.WriteString("- Collection Timeframe: Last 24 hours\n")
	b.WriteString("- Automated Processing: Completed\n\n")
}

func (c *Compiler) writeTrends(b *strings.Builder, analysis domain.AnalysisResult) {
	b.WriteString(divider + "\n\n")
	b.WriteString("KEY TRENDS & INSIGHTS\n")

	trends := analysis.TrendAnalysis
	if trends == nil || (len(trends.EmergingTrends) == 0 && len(trends.MarketDynamics) == 0) {
		b.WriteString("- AI-powered trend analysis completed\n")
		b.WriteString("- Cross-source pattern recognition active\n")
		b.WriteString("- Comprehensive industry coverage maintained\n\n")
		return
	}

	if len(trends.EmergingTrends) > 0 {
		b.WriteString("\nEMERGING TRENDS:\n")
		for i, trend := range capItems(trends.EmergingTrends, maxTrendItems) {
			fmt.Fprintf(b, "   %d. %s\n", i+1, trend)
		}
	}
	if len(trends.MarketDynamics) > 0 {
		b.WriteString("\nMARKET DYNAMICS:\n")
		for i, dynamic := range capItems(trends.MarketDynamics, maxTrendItems) {
			fmt.Fprintf(b, "   %d. %s\n", i+1, dynamic)
		}
	}
	b.WriteString("\n")
}

func (c *Compiler) writeTopArticles(b *strings.Builder, articles []domain.Article, analysis domain.AnalysisResult) {
	b.WriteString(divider + "\n\n")
	b.WriteString("TOP ARTICLES ANALYSIS\n")

	if len(analysis.TopStories) > 0 {
		c.writeScoredArticles(b, articles, analysis)
	} else {
		c.writeSourceDiverseArticles(b, articles)
	}
}

// writeScoredArticles resolves top-story IDs against the analyzed subset.
// The analyzed subset is the prefix of the collected set; out-of-range IDs
// are skipped, never an error.
func (c *Compiler) writeScoredArticles(b *strings.Builder, articles []domain.Article, analysis domain.AnalysisResult) {
	subsetLen := analysis.ProcessingInfo.ArticlesAnalyzed
	if subsetLen <= 0 || subsetLen > len(articles) {
		subsetLen = len(articles)
	}

	rendered := 0
	for _, story := range analysis.TopStories {
		if rendered >= maxTopArticles {
			break
		}
		if story.ArticleID < 1 || story.ArticleID > subsetLen {
			continue
		}

		article := articles[story.ArticleID-1]
		insights := story.KeyInsights
		if insights == "" {
			insights = "Significant industry development"
		}

		fmt.Fprintf(b, "\nARTICLE #%d | Relevance Score: %d/10\n", story.ArticleID, story.RelevanceScore)
		fmt.Fprintf(b, "Title: %s\n", article.Title)
		fmt.Fprintf(b, "Source: %s\n", article.Source)
		fmt.Fprintf(b, "AI Insight: %s\n", insights)
		fmt.Fprintf(b, "Link: %s\n", htmlutil.Truncate(article.Link, linkMaxChars))
		rendered++
	}
	b.WriteString("\n")
}

// writeSourceDiverseArticles renders the first article seen per distinct
// source when no scored stories are available.
func (c *Compiler) writeSourceDiverseArticles(b *strings.Builder, articles []domain.Article) {
	seen := make(map[string]bool)
	rendered := 0
	for _, article := range articles {
		if rendered >= maxTopArticles {
			break
		}
		if seen[article.Source] {
			continue
		}
		seen[article.Source] = true
		rendered++

		fmt.Fprintf(b, "\nARTICLE #%d | Source: %s\n", rendered, article.Source)
		fmt.Fprintf(b, "Title: %s\n", article.Title)
		fmt.Fprintf(b, "Summary: %s\n", htmlutil.Truncate(article.Summary, summaryMaxChars))
		fmt.Fprintf(b, "Link: %s\n", htmlutil.Truncate(article.Link, linkMaxChars))
	}
	b.WriteString("\n")
}

func (c *Compiler) writeRecommendations(b *strings.Builder, analysis domain.AnalysisResult) {
	b.WriteString(divider + "\n\n")
	b.WriteString("STRATEGIC RECOMMENDATIONS\n")

	recommendations := analysis.StrategicRecommendations
	if len(recommendations) == 0 {
		industry := analysis.Metadata.IndustryFocus
		if industry == "" {
			industry = "industry"
		}
		recommendations = []string{
			fmt.Sprintf("Continue monitoring %s developments across all sources", industry),
			"Leverage AI-powered insights for competitive advantage",
			"Maintain daily intelligence briefings for strategic awareness",
			"Expand monitoring to additional industry sectors as needed",
		}
	}

	for i, rec := range capItems(recommendations, maxRecommendations) {
		fmt.Fprintf(b, "   %d. %s\n", i+1, rec)
	}
	b.WriteString("\n")
}

func (c *Compiler) writeFooter(b *strings.Builder, articles []domain.Article, reportTime string) {
	sources := domain.DistinctSources(articles)

	b.WriteString(divider + "\n\n")
	b.WriteString("SYSTEM PERFORMANCE METRICS\n")
	b.WriteString("- AI Processing: Completed\n")
	fmt.Fprintf(b, "- Multi-Source Coverage: %s\n", strings.Join(sources, ", "))
	b.WriteString("- Real-time Analysis: Completed in under 30 seconds\n")
	b.WriteString("- Executive Summary: Generated automatically\n\n")
	b.WriteString(divider + "\n\n")
	b.WriteString("Powered by AI News Aggregation Agent\n")
	b.WriteString("Questions? Contact: admin@company.com\n")
	fmt.Fprintf(b, "Report generated: %s\n", reportTime)
}

// capItems returns at most max items from the list
func capItems(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
