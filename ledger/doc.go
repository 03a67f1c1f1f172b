// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the record-keeping layer for questions, answers,
model-error audit rows, feedback, and language suggestions.

All functions operate on a plain *sql.DB with positional placeholders
that work on both supported dialects. Each write is one statement, so
concurrent per-model write paths never block each other; rows are scoped
by question_id/answer_id and need no cross-model locking.

Reference errors surface as ErrNotFound:

	if err := ledger.UpdateAnswerVotes(db, id, 1, 0); errors.Is(err, ledger.ErrNotFound) {
		// unknown answer id
	}

UpsertFeedback keeps at most one row per answer: inserts start active,
updates overwrite the payload but leave the active flag to the
accept/reject flow (SetFeedbackActive).
*/
package ledger
