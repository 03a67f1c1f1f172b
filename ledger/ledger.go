// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("ledger: not found")

// InsertQuestion creates a question row and returns its id. Language
// fields are stored as given; callers validate them first.
func InsertQuestion(db *sql.DB, title, content, language, sourceLanguage, targetLanguage, task, ipAddress string) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO question (title, content, language, source_language, target_language, task, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, title, content, language, sourceLanguage, targetLanguage, task, ipAddress).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// QuestionExists reports whether a question row exists.
func QuestionExists(db *sql.DB, questionID int64) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM question WHERE id = $1`, questionID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query question: %w", err)
	}
	return true, nil
}

// InsertAnswer creates an answer row for one successful model response.
// frontend_order starts at -1 (unset) until the result processor
// assigns the randomized display position.
func InsertAnswer(db *sql.DB, questionID int64, modelID, content string) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO answer (content, model_id, question_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, content, modelID, questionID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert answer: %w", err)
	}
	return id, nil
}

// InsertLLMError records one failed model invocation. Rows are
// append-only.
func InsertLLMError(db *sql.DB, questionID int64, modelID, promptText, errMsg string) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO llm_error (question_id, model_id, prompt, error)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, questionID, modelID, promptText, errMsg).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert llm error: %w", err)
	}
	return id, nil
}

// UpdateAnswerFrontendOrder sets the randomized display position of an
// answer. The order must stay stable across later votes.
func UpdateAnswerFrontendOrder(db *sql.DB, answerID int64, order int) error {
	res, err := db.Exec(`
		UPDATE answer
		SET frontend_order = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, order, answerID)
	if err != nil {
		return fmt.Errorf("update answer order: %w", err)
	}
	return expectOneRow(res)
}

// UpdateAnswerVotes applies vote deltas to an answer. Deltas may be
// negative (unaccept/unreject).
func UpdateAnswerVotes(db *sql.DB, answerID int64, upDelta, downDelta int) error {
	res, err := db.Exec(`
		UPDATE answer
		SET upvotes = upvotes + $1, downvotes = downvotes + $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, upDelta, downDelta, answerID)
	if err != nil {
		return fmt.Errorf("update answer votes: %w", err)
	}
	return expectOneRow(res)
}

// AnswerExists reports whether an answer row exists.
func AnswerExists(db *sql.DB, answerID int64) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM answer WHERE id = $1`, answerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query answer: %w", err)
	}
	return true, nil
}

// UpsertFeedback creates or overwrites the single feedback row for an
// answer. A new row starts active; updates keep the current active
// state since accept/reject own that flag.
func UpsertFeedback(db *sql.DB, answerID int64, predefined []string, textFeedback string) error {
	if predefined == nil {
		predefined = []string{}
	}
	encoded, err := json.Marshal(predefined)
	if err != nil {
		return fmt.Errorf("encode predefined feedbacks: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO feedback (answer_id, predefined_feedbacks, text_feedback, active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (answer_id) DO UPDATE
		SET predefined_feedbacks = $2, text_feedback = $3, updated_at = CURRENT_TIMESTAMP
	`, answerID, string(encoded), textFeedback)
	if err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	return nil
}

// SetFeedbackActive flips the active flag on all feedback rows tied to
// an answer. A missing feedback row is not an error.
func SetFeedbackActive(db *sql.DB, answerID int64, active bool) error {
	_, err := db.Exec(`
		UPDATE feedback
		SET active = $1, updated_at = CURRENT_TIMESTAMP
		WHERE answer_id = $2
	`, active, answerID)
	if err != nil {
		return fmt.Errorf("set feedback active: %w", err)
	}
	return nil
}

// SetAcceptedAnswer marks an answer as the accepted one on its parent
// question.
func SetAcceptedAnswer(db *sql.DB, answerID int64) error {
	res, err := db.Exec(`
		UPDATE question
		SET accepted_answer_id = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = (SELECT question_id FROM answer WHERE id = $1)
	`, answerID)
	if err != nil {
		return fmt.Errorf("set accepted answer: %w", err)
	}
	return expectOneRow(res)
}

// ClearAcceptedAnswer removes the accepted mark if this answer holds it.
// No-op when the answer was not the accepted one.
func ClearAcceptedAnswer(db *sql.DB, answerID int64) error {
	_, err := db.Exec(`
		UPDATE question
		SET accepted_answer_id = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE accepted_answer_id = $1
	`, answerID)
	if err != nil {
		return fmt.Errorf("clear accepted answer: %w", err)
	}
	return nil
}

// AddLanguage inserts a language suggestion or increments its counter.
func AddLanguage(db *sql.DB, name string) error {
	_, err := db.Exec(`
		INSERT INTO language (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE
		SET count = language.count + 1, updated_at = CURRENT_TIMESTAMP
	`, name)
	if err != nil {
		return fmt.Errorf("add language: %w", err)
	}
	return nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
