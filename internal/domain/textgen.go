package domain

import "context"

// TextGenerator produces a text completion for a prompt. Implementations
// wrap a hosted model provider; callers must treat any error as a soft
// failure and fall back to deterministic behavior.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
