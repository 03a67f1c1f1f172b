// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package llm holds the model registry and the per-provider clients.

# Client Interface

Every backend is reached through a single synchronous call:

	type Client interface {
		Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	}

Implementations respect context cancellation and deadlines. The
dispatcher applies the configured per-call timeout through the context,
so clients do not set their own.

# Providers

Three HTTP providers are included, each bound to one fixed model id:

  - OpenAIClient: chat completions API (Bearer auth)
  - AnthropicClient: messages API (x-api-key auth)
  - GeminiClient: generateContent API (key query parameter)

All three accept a base URL override for API-compatible endpoints and
for tests.

# Registry

The registry maps model ids to display names and clients:

	reg, err := llm.FromConfig(cfg)
	reg = reg.Warmup(ctx, cfg.LLMTimeout)

FromConfig builds clients for every configured model whose provider
credential is present. The registry is immutable after construction,
which makes unsynchronized concurrent reads safe during request
processing.

# Warm-up

Warmup sends one small completion per model and drops the models that
do not answer. Failures are logged and only exclude the single model;
startup itself never fails because of an unreachable backend.
*/
package llm
