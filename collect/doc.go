// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package collect turns dispatcher outcomes into ledger rows and the
anonymized response.

Process persists one answer row per success (frontend_order unset) and
one llm_error row per failure, then applies a single random permutation
that drives both the opaque labels ("model A", "model B", ...) and the
persisted frontend_order. Using the same permutation for both keeps a
later vote or accept by answer_id consistent with what the user saw.

The label alphabet is capped at 26; more simultaneous successes than
that fails with ErrTooManyAnswers rather than wrapping. An empty
registry fails with ErrNoModels — the only way this layer fails a
request, since individual model failures are absorbed into the audit
trail.
*/
package collect
