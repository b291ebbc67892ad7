package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects which vendor to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	// Models is the ordered list of model variants for the selected
	// provider. Generation tries them first to last; a later entry is
	// only reached when every earlier one failed.
	Models []string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout is the maximum duration for a single model request.
	// Default: 60s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// defaultModels is the fallback chain per provider, fastest first.
var defaultModels = map[string][]string{
	"gemini":     {"gemini-3-flash-preview", "gemini-3-pro-preview", "gemini-2.5-flash"},
	"openai":     {"gpt-4o-mini", "gpt-4o"},
	"anthropic":  {"claude-haiku", "claude-sonnet"},
	"openrouter": {"google/gemini-2.0-flash-exp"},
	"mock":       {"mock"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Models:   defaultModels["gemini"],
		Timeout:  60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("MATHGENIUS_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		if m, ok := defaultModels[p]; ok {
			cfg.Models = m
		}
	}
	if ms := os.Getenv("MATHGENIUS_LLM_MODELS"); ms != "" {
		cfg.Models = splitModels(ms)
	}

	if k := os.Getenv("MATHGENIUS_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if k := os.Getenv("MATHGENIUS_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if u := os.Getenv("MATHGENIUS_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("MATHGENIUS_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if k := os.Getenv("MATHGENIUS_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini, then OpenAI, Anthropic, OpenRouter) and returns a Config for
// the first provider whose key is found. Returns (Config{}, false) when
// none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probe := []struct {
		env      string
		provider string
		set      func(*Config, string)
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
	}
	for _, p := range probe {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			cfg.Models = defaultModels[p.provider]
			p.set(&cfg, k)
			return cfg, true
		}
	}

	return Config{}, false
}

// WithCredential returns a copy of the config with the selected
// provider's API key replaced. Used when the key comes from the local
// store rather than the environment.
func (c Config) WithCredential(key string) Config {
	switch c.Provider {
	case "gemini":
		c.Gemini.APIKey = key
	case "openai":
		c.OpenAI.APIKey = key
	case "anthropic":
		c.Anthropic.APIKey = key
	case "openrouter":
		c.OpenRouter.APIKey = key
	}
	return c
}

// HasCredential reports whether the selected provider has an API key.
// The mock provider never needs one.
func (c Config) HasCredential() bool {
	switch c.Provider {
	case "gemini":
		return c.Gemini.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "openrouter":
		return c.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// Validate checks that the selected provider is known, has at least one
// model variant and has its required API key set.
func (c Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if len(c.Models) == 0 {
		return fmt.Errorf("no model variants configured for provider %q", c.Provider)
	}
	if !c.HasCredential() {
		return fmt.Errorf("MATHGENIUS_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

func splitModels(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
