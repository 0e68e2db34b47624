// Package textgen provides hosted-model text generation used by the
// scrapbook organization pipeline. Providers are plain HTTP clients; all
// prompt construction and output parsing happens in the caller.
package textgen

import (
	"log/slog"

	"celebrationgarden/internal/domain"
)

// Config selects and configures a provider.
type Config struct {
	Provider       string // "gemini", "groq", or "" for none
	GoogleAIAPIKey string
	GeminiModel    string
	GroqAPIKey     string
}

// New returns the configured generator, or nil when no provider credential
// is set. A nil generator means the pipeline runs heuristics only.
func New(cfg Config, logger *slog.Logger) domain.TextGenerator {
	switch cfg.Provider {
	case "gemini":
		if cfg.GoogleAIAPIKey == "" {
			logger.Warn("gemini selected but GOOGLE_AI_API_KEY unset, organization runs heuristics only")
			return nil
		}
		return newGemini(cfg.GoogleAIAPIKey, cfg.GeminiModel, logger)
	case "groq":
		if cfg.GroqAPIKey == "" {
			logger.Warn("groq selected but GROQ_API_KEY unset, organization runs heuristics only")
			return nil
		}
		return newGroq(cfg.GroqAPIKey, logger)
	case "":
		return nil
	default:
		logger.Warn("unknown text generation provider, organization runs heuristics only", "provider", cfg.Provider)
		return nil
	}
}
