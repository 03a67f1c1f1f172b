// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the configured dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Supported dialects are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (lib/pq).

# Tables

The schema includes:

  - question: One submitted question with task and language fields
  - answer: One successful model response per question per model
  - llm_error: Append-only audit trail of failed model invocations
  - feedback: At most one feedback row per answer
  - language: Language-suggestion counters

# Relationships

	question 1──* answer
	question 1──* llm_error
	answer   1──1 feedback (enforced by UNIQUE answer_id)
	question 0..1 → answer (accepted_answer_id, weak reference)

The accepted_answer_id column is a nullable weak reference, not a foreign
key, so a question row can be written before any of its answers exist.

# Indexes

Performance indexes on:

  - question.task
  - answer.question_id
  - llm_error.question_id
  - feedback.answer_id (unique)
  - language.name (unique)
*/
package db
