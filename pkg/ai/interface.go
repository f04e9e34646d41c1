package ai

import "context"

// Summarizer is the interface for generative summarization providers.
// Implement this interface to add new AI providers.
type Summarizer interface {
	// Summarize sends a fully composed prompt to the provider and returns
	// the raw generated text. The provider is invoked exactly once; retry
	// policy is the caller's concern.
	Summarize(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
)
