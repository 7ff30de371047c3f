// ABOUTME: TextGenerator interface abstracting the language model capability
// ABOUTME: Allows stubbing the model in tests and swapping providers

package interfaces

import "context"

// TextGenerator defines the generic text-completion capability used by the
// analysis engine. The returned string may be plain text or JSON text; the
// engine must handle both.
type TextGenerator interface {
	// GenerateJSON sends a prompt and requests a JSON-shaped completion.
	// Providers that cannot enforce JSON output return whatever text the
	// model produced.
	GenerateJSON(ctx context.Context, prompt string) (string, error)

	// Model returns the provider model identity for provenance reporting.
	Model() string
}
