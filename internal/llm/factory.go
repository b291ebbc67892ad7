package llm

import (
	"context"
	"fmt"

	"github.com/khanhvo/mathgenius/internal/store"
)

// NewVariants builds one logging-wrapped Provider per configured model,
// in the order they should be tried. The caller owns the fallback walk;
// nothing here retries.
func NewVariants(ctx context.Context, cfg Config, eventRepo store.EventRepo) ([]Provider, error) {
	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("no model variants configured")
	}

	variants := make([]Provider, 0, len(cfg.Models))
	for _, model := range cfg.Models {
		p, err := newProvider(ctx, cfg, model)
		if err != nil {
			return nil, fmt.Errorf("initializing %s provider for %q: %w", cfg.Provider, model, err)
		}
		variants = append(variants, WithLogging(p, eventRepo))
	}
	return variants, nil
}

// NewProvider creates a single logging-wrapped Provider for the first
// configured model. Used by paths that do not need the fallback chain.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	variants, err := NewVariants(ctx, cfg, eventRepo)
	if err != nil {
		return nil, err
	}
	return variants[0], nil
}

func newProvider(ctx context.Context, cfg Config, model string) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini, model)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI, model)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic, model)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouter, model)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
