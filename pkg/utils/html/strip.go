// ABOUTME: HTML utilities for stripping markup and truncating summaries
// ABOUTME: Provides common text normalization used across the application

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes markup from a string and returns the plain text with
// collapsed whitespace. Falls back to the raw input when parsing fails.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	doc.Find("script, style").Remove()
	text := doc.Text()

	return strings.Join(strings.Fields(text), " ")
}

// Truncate caps a string at max characters, appending an ellipsis marker
// when the input was longer. Inputs at or under the cap pass through.
// Budgets count characters, not bytes, so multi-byte text is never cut
// mid-rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
