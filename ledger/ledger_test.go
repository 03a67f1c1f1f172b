// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/danielhkuo/lmcode/models"
	"github.com/danielhkuo/lmcode/testutil"
)

func TestInsertQuestion(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	id, err := InsertQuestion(conn, "Reverse a list", "def f(", "Python", "", "", models.TaskCodeCompletion, "203.0.113.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero question id")
	}

	var content, task, ip string
	err = conn.QueryRow(`SELECT content, task, ip_address FROM question WHERE id = $1`, id).Scan(&content, &task, &ip)
	if err != nil {
		t.Fatalf("query question: %v", err)
	}
	if content != "def f(" || task != models.TaskCodeCompletion || ip != "203.0.113.9" {
		t.Errorf("unexpected row: %q %q %q", content, task, ip)
	}
}

func TestInsertAnswer_DefaultsUnsetOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	id, err := InsertAnswer(conn, questionID, "gpt-4o", "return x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var order, up, down int
	err = conn.QueryRow(`SELECT frontend_order, upvotes, downvotes FROM answer WHERE id = $1`, id).Scan(&order, &up, &down)
	if err != nil {
		t.Fatalf("query answer: %v", err)
	}
	if order != -1 {
		t.Errorf("expected frontend_order -1 before anonymization, got %d", order)
	}
	if up != 0 || down != 0 {
		t.Errorf("expected zero vote counters, got %d/%d", up, down)
	}
}

func TestUpdateAnswerVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)
	answerID := testutil.CreateTestAnswer(t, conn, questionID, "gpt-4o")

	if err := UpdateAnswerVotes(conn, answerID, 1, 0); err != nil {
		t.Fatalf("upvote failed: %v", err)
	}
	if err := UpdateAnswerVotes(conn, answerID, 0, 2); err != nil {
		t.Fatalf("downvote failed: %v", err)
	}
	if err := UpdateAnswerVotes(conn, answerID, -1, 0); err != nil {
		t.Fatalf("negative delta failed: %v", err)
	}

	var up, down int
	if err := conn.QueryRow(`SELECT upvotes, downvotes FROM answer WHERE id = $1`, answerID).Scan(&up, &down); err != nil {
		t.Fatal(err)
	}
	if up != 0 || down != 2 {
		t.Errorf("expected 0 upvotes and 2 downvotes, got %d/%d", up, down)
	}
}

func TestUpdateAnswerVotes_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	err := UpdateAnswerVotes(conn, 99999, 1, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAnswerFrontendOrder_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	err := UpdateAnswerFrontendOrder(conn, 99999, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertFeedback_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)
	answerID := testutil.CreateTestAnswer(t, conn, questionID, "gpt-4o")

	if err := UpsertFeedback(conn, answerID, []string{"incorrect"}, "first pass"); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := UpsertFeedback(conn, answerID, []string{"incomplete", "style"}, "second pass"); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM feedback WHERE answer_id = $1`, answerID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one feedback row, got %d", count)
	}

	var encoded, text string
	if err := conn.QueryRow(`SELECT predefined_feedbacks, text_feedback FROM feedback WHERE answer_id = $1`, answerID).Scan(&encoded, &text); err != nil {
		t.Fatal(err)
	}
	var predefined []string
	if err := json.Unmarshal([]byte(encoded), &predefined); err != nil {
		t.Fatalf("stored predefined feedbacks are not valid JSON: %v", err)
	}
	if len(predefined) != 2 || predefined[0] != "incomplete" {
		t.Errorf("expected second payload to win, got %v", predefined)
	}
	if text != "second pass" {
		t.Errorf("expected second text feedback, got %q", text)
	}
}

func TestUpsertFeedback_UpdateKeepsActiveFlag(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)
	answerID := testutil.CreateTestAnswer(t, conn, questionID, "gpt-4o")

	if err := UpsertFeedback(conn, answerID, []string{"incorrect"}, ""); err != nil {
		t.Fatal(err)
	}
	// Accept flow deactivates the feedback...
	if err := SetFeedbackActive(conn, answerID, false); err != nil {
		t.Fatal(err)
	}
	// ...and a later payload update must not reactivate it.
	if err := UpsertFeedback(conn, answerID, []string{"style"}, "still wrong"); err != nil {
		t.Fatal(err)
	}

	var active bool
	if err := conn.QueryRow(`SELECT active FROM feedback WHERE answer_id = $1`, answerID).Scan(&active); err != nil {
		t.Fatal(err)
	}
	if active {
		t.Error("payload update reactivated feedback; active flag belongs to accept/reject")
	}
}

func TestSetAcceptedAnswer(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)
	answerID := testutil.CreateTestAnswer(t, conn, questionID, "gpt-4o")

	if err := SetAcceptedAnswer(conn, answerID); err != nil {
		t.Fatalf("set accepted failed: %v", err)
	}

	var accepted sql.NullInt64
	if err := conn.QueryRow(`SELECT accepted_answer_id FROM question WHERE id = $1`, questionID).Scan(&accepted); err != nil {
		t.Fatal(err)
	}
	if !accepted.Valid || accepted.Int64 != answerID {
		t.Errorf("expected accepted_answer_id %d, got %+v", answerID, accepted)
	}

	if err := ClearAcceptedAnswer(conn, answerID); err != nil {
		t.Fatalf("clear accepted failed: %v", err)
	}
	if err := conn.QueryRow(`SELECT accepted_answer_id FROM question WHERE id = $1`, questionID).Scan(&accepted); err != nil {
		t.Fatal(err)
	}
	if accepted.Valid {
		t.Errorf("expected accepted_answer_id cleared, got %d", accepted.Int64)
	}
}

func TestSetAcceptedAnswer_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	err := SetAcceptedAnswer(conn, 99999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddLanguage_CountsRepeats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	for i := 0; i < 3; i++ {
		if err := AddLanguage(conn, "Zig"); err != nil {
			t.Fatalf("add language failed: %v", err)
		}
	}
	if err := AddLanguage(conn, "Python"); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := conn.QueryRow(`SELECT count FROM language WHERE name = 'Zig'`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected Zig count 3, got %d", count)
	}

	var rows int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM language`).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 2 {
		t.Errorf("expected 2 language rows, got %d", rows)
	}
}

func TestInsertLLMError_AppendOnly(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	id1, err := InsertLLMError(conn, questionID, "gpt-4o", "prompt text", "timeout")
	if err != nil {
		t.Fatal(err)
	}
	id2, err := InsertLLMError(conn, questionID, "gpt-4o", "prompt text", "timeout again")
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Error("expected distinct audit rows for repeated failures")
	}
}
