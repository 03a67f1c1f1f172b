// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// dialect is "sqlite" or "postgres".
func CreateSchema(db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case "sqlite":
		schema = schemaSQLite
	case "postgres":
		schema = schemaPostgres
	default:
		return fmt.Errorf("unsupported database dialect: %s", dialect)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaPostgres = `
-- Questions
CREATE TABLE IF NOT EXISTS question (
    id BIGSERIAL PRIMARY KEY,
    title TEXT,
    content TEXT NOT NULL,
    language TEXT,
    source_language TEXT,
    target_language TEXT,
    task TEXT NOT NULL,
    ip_address TEXT,
    accepted_answer_id BIGINT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_question_task ON question(task);

-- Answers
CREATE TABLE IF NOT EXISTS answer (
    id BIGSERIAL PRIMARY KEY,
    content TEXT NOT NULL,
    model_id TEXT NOT NULL,
    question_id BIGINT NOT NULL REFERENCES question(id),
    frontend_order INTEGER NOT NULL DEFAULT -1,
    upvotes INTEGER NOT NULL DEFAULT 0,
    downvotes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_answer_question_id ON answer(question_id);

-- LLM errors (append-only audit trail)
CREATE TABLE IF NOT EXISTS llm_error (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES question(id),
    model_id TEXT NOT NULL,
    prompt TEXT NOT NULL,
    error TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_llm_error_question_id ON llm_error(question_id);

-- Feedback (one row per answer, upsert semantics)
CREATE TABLE IF NOT EXISTS feedback (
    id BIGSERIAL PRIMARY KEY,
    answer_id BIGINT NOT NULL UNIQUE REFERENCES answer(id),
    predefined_feedbacks TEXT NOT NULL DEFAULT '[]',
    text_feedback TEXT,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Language suggestions
CREATE TABLE IF NOT EXISTS language (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    count INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

const schemaSQLite = `
-- Questions
CREATE TABLE IF NOT EXISTS question (
    id INTEGER PRIMARY KEY,
    title TEXT,
    content TEXT NOT NULL,
    language TEXT,
    source_language TEXT,
    target_language TEXT,
    task TEXT NOT NULL,
    ip_address TEXT,
    accepted_answer_id INTEGER,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_question_task ON question(task);

-- Answers
CREATE TABLE IF NOT EXISTS answer (
    id INTEGER PRIMARY KEY,
    content TEXT NOT NULL,
    model_id TEXT NOT NULL,
    question_id INTEGER NOT NULL REFERENCES question(id),
    frontend_order INTEGER NOT NULL DEFAULT -1,
    upvotes INTEGER NOT NULL DEFAULT 0,
    downvotes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_answer_question_id ON answer(question_id);

-- LLM errors (append-only audit trail)
CREATE TABLE IF NOT EXISTS llm_error (
    id INTEGER PRIMARY KEY,
    question_id INTEGER NOT NULL REFERENCES question(id),
    model_id TEXT NOT NULL,
    prompt TEXT NOT NULL,
    error TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_llm_error_question_id ON llm_error(question_id);

-- Feedback (one row per answer, upsert semantics)
CREATE TABLE IF NOT EXISTS feedback (
    id INTEGER PRIMARY KEY,
    answer_id INTEGER NOT NULL UNIQUE REFERENCES answer(id),
    predefined_feedbacks TEXT NOT NULL DEFAULT '[]',
    text_feedback TEXT,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Language suggestions
CREATE TABLE IF NOT EXISTS language (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    count INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
