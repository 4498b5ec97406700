package port

import "context"

// GenerationRequest carries one prompt to the text-generation provider.
type GenerationRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
	// JSONOnly asks the provider to emit a single JSON object with no
	// surrounding prose. The output is still untrusted and may not parse.
	JSONOnly bool
}

// TextGenerator abstracts the LLM text-generation provider.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
