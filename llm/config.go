// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package llm

import (
	"log/slog"
	"strings"

	"github.com/danielhkuo/lmcode/cliparse"
)

// FromConfig builds the model registry from parsed configuration. A
// provider's models are skipped entirely when its credential is absent,
// so a deployment can run with any subset of providers.
func FromConfig(cfg cliparse.Config) (*Registry, error) {
	var models []Model

	if cfg.OpenAIKey != "" {
		for _, entry := range cfg.OpenAIModels {
			id, display := parseModelEntry(entry)
			models = append(models, Model{
				ID:          id,
				DisplayName: display,
				Client:      NewOpenAIClient(cfg.OpenAIKey, "", id, cfg.MaxTokens),
			})
		}
	} else if len(cfg.OpenAIModels) > 0 {
		slog.Warn("skipping OpenAI models, OPENAI_API_KEY not set", "models", cfg.OpenAIModels)
	}

	if cfg.AnthropicKey != "" {
		for _, entry := range cfg.AnthropicModels {
			id, display := parseModelEntry(entry)
			models = append(models, Model{
				ID:          id,
				DisplayName: display,
				Client:      NewAnthropicClient(cfg.AnthropicKey, "", id, cfg.MaxTokens),
			})
		}
	} else if len(cfg.AnthropicModels) > 0 {
		slog.Warn("skipping Anthropic models, ANTHROPIC_API_KEY not set", "models", cfg.AnthropicModels)
	}

	if cfg.GeminiKey != "" {
		for _, entry := range cfg.GeminiModels {
			id, display := parseModelEntry(entry)
			models = append(models, Model{
				ID:          id,
				DisplayName: display,
				Client:      NewGeminiClient(cfg.GeminiKey, "", id, cfg.MaxTokens),
			})
		}
	} else if len(cfg.GeminiModels) > 0 {
		slog.Warn("skipping Gemini models, GEMINI_API_KEY not set", "models", cfg.GeminiModels)
	}

	return NewRegistry(models)
}

// parseModelEntry splits an "id=Display Name" config entry. The display
// name defaults to the id.
func parseModelEntry(entry string) (id, display string) {
	if i := strings.IndexByte(entry, '='); i >= 0 {
		id = strings.TrimSpace(entry[:i])
		display = strings.TrimSpace(entry[i+1:])
		if display == "" {
			display = id
		}
		return id, display
	}
	return entry, entry
}
