// ABOUTME: Prompt construction for the analysis instruction contract
// ABOUTME: Fixed role, task and required JSON schema sent to the model

package analysis

import (
	"encoding/json"
	"fmt"
	"time"

	"news-intel-api/core/domain"
	htmlutil "news-intel-api/pkg/utils/html"
)

// promptSummaryMaxChars truncates article summaries in the prompt payload
// for token efficiency.
const promptSummaryMaxChars = 200

// promptArticle is the compact article form embedded in the prompt.
// ID is the 1-based position within the analyzed subset; the model scores
// articles by this ID.
type promptArticle struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// buildPrompt assembles the full instruction contract: analyst role, task
// list, required JSON schema and the serialized article batch.
func buildPrompt(articles []domain.Article, industryFocus string, now time.Time) string {
	payload := make([]promptArticle, 0, len(articles))
	for i, a := range articles {
		category := a.Category
		if category == "" {
			category = "General"
		}
		payload = append(payload, promptArticle{
			ID:       i + 1,
			Title:    a.Title,
			Summary:  htmlutil.Truncate(a.Summary, promptSummaryMaxChars),
			Source:   a.Source,
			Category: category,
		})
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		serialized = []byte("[]")
	}

	return fmt.Sprintf(`You are an expert business analyst specializing in %s industry intelligence for Indian markets.

Your task is to analyze news articles and provide strategic business insights.

ANALYSIS REQUIREMENTS:
1. Relevance Scoring: Rate each article's importance to %s (1-10 scale)
2. Trend Identification: Identify emerging patterns and themes
3. Business Impact: Assess implications for companies and markets
4. Executive Summary: Create concise insights for leadership decision-making
5. Action Items: Suggest specific business actions or monitoring areas

OUTPUT FORMAT (return valid JSON):
{
    "analysis_metadata": {
        "industry_focus": "%s",
        "analysis_date": "%s",
        "articles_analyzed": 0,
        "confidence_level": "high/medium/low"
    },
    "top_stories": [
        {
            "article_id": 1,
            "relevance_score": 8,
            "impact_level": "high/medium/low",
            "key_insights": "specific business insight"
        }
    ],
    "trend_analysis": {
        "emerging_trends": ["trend 1", "trend 2"],
        "market_dynamics": ["dynamic 1", "dynamic 2"],
        "risk_factors": ["risk 1", "risk 2"]
    },
    "executive_summary": "Comprehensive 2-3 sentence summary of key developments",
    "strategic_recommendations": [
        "Monitor competitor responses to AI adoption",
        "Evaluate supply chain implications"
    ]
}

IMPORTANT: Return only valid JSON. Be specific and actionable in all insights.

Analyze these %s news articles from Indian business media:

%s

Focus on identifying trends, business implications, and actionable insights for executives.`,
		industryFocus, industryFocus, industryFocus,
		now.Format("2006-01-02 15:04"),
		industryFocus, string(serialized))
}
