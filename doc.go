// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lmcode API server.

lmcode is a blind LLM comparison service for coding tasks: one question
is sent to every configured model at once, the answers come back
anonymized as "model A", "model B", ... in random order, and users vote
on them without knowing which model wrote what.

# Starting the Server

The server runs on SQLite out of the box:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Flags override environment variables:

	go run . -p 5050 -t sqlite -d lmcode.db -openai-models gpt-4o

# Configuration

Provider credentials are environment only:

  - OPENAI_API_KEY + OPENAI_MODELS
  - ANTHROPIC_API_KEY + ANTHROPIC_MODELS
  - GEMINI_API_KEY + GEMINI_MODELS

Model lists are comma-separated "id" or "id=Display Name" entries.
A .env file in the working directory is loaded if present.

Optional settings:

  - PORT (-p): Server port (default: 5050)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): File path or connection string
  - LLM_TIMEOUT (-llm-timeout): Per-call timeout in seconds (default: 60)
  - LLM_RETRIES (-llm-retries): Retries after the first attempt (default: 2)
  - LLM_BACKOFF (-llm-backoff): Seconds between attempts (default: 1)
  - LLM_MAX_TOKENS (-max-tokens): Output token cap (default: 1024)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, answers, votes, feedback)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - prompt: Task validation and prompt rendering
  - llm: Provider clients and the model registry
  - dispatch: Concurrent fan-out with per-model isolation
  - collect: Answer persistence and anonymization
  - ledger: Database writes
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
