// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cliparse.LoadEnv() // optional .env file
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5050)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - OpenAIKey / AnthropicKey / GeminiKey: provider credentials (env only)
  - OpenAIModels / AnthropicModels / GeminiModels: registered model ids
  - LLMTimeout: per-call model timeout
  - LLMRetries: retries per model call after the first attempt
  - LLMBackoff: wait between retry attempts
  - MaxTokens: max output tokens per model call
  - SkipWarmup: skip the startup connectivity check

# CLI Flags

	-p                Server port
	-d                Database URL or file path
	-t                Database type (sqlite or postgres)
	-openai-models    Comma-separated OpenAI model ids
	-anthropic-models Comma-separated Anthropic model ids
	-gemini-models    Comma-separated Gemini model ids
	-llm-timeout      Per-call timeout in seconds
	-llm-retries      Retry budget per model call
	-llm-backoff      Seconds between retry attempts
	-max-tokens       Max output tokens
	-skip-warmup      Skip the startup connectivity check

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	OPENAI_MODELS     → -openai-models
	ANTHROPIC_MODELS  → -anthropic-models
	GEMINI_MODELS     → -gemini-models
	LLM_TIMEOUT       → -llm-timeout
	LLM_RETRIES       → -llm-retries
	LLM_BACKOFF       → -llm-backoff
	LLM_MAX_TOKENS    → -max-tokens

Credentials are read only from the environment:

	OPENAI_API_KEY
	ANTHROPIC_API_KEY
	GEMINI_API_KEY

CLI flags take precedence over environment variables. LoadEnv reads a
.env file into the environment when one exists (development convenience).

# Model Lists

Each model entry is either a bare id or an id with a display name:

	OPENAI_MODELS="gpt-4o=GPT-4o,gpt-4o-mini"

The display name defaults to the id. The whole configuration is parsed
once at startup and treated as immutable for the process lifetime.
*/
package cliparse
