// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package collect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danielhkuo/lmcode/dispatch"
	"github.com/danielhkuo/lmcode/llm"
	"github.com/danielhkuo/lmcode/models"
	"github.com/danielhkuo/lmcode/testutil"
)

const testPrompt = "Translate the code snippet from Python to Go: def f(x): return x+1"

func TestProcess_SuccessesAndFailuresSplit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	reg := testutil.NewTestRegistry(t, map[string]llm.Client{
		"alpha": &testutil.StubClient{},
		"beta":  &testutil.StubClient{},
		"gamma": &testutil.StubClient{},
	})
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeTranslation)

	outcomes := map[string]dispatch.Outcome{
		"alpha": {Content: "package main"},
		"beta":  {Err: "timeout after retries"},
		"gamma": {Content: "func f(x int) int { return x + 1 }"},
	}

	views, err := Process(conn, reg, questionID, testPrompt, outcomes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 response records, got %d", len(views))
	}

	// Union of answer models and error models must equal the registry.
	seen := map[string]bool{}
	for _, v := range views {
		seen[v.ModelID] = true
	}
	rows, err := conn.Query(`SELECT model_id FROM llm_error WHERE question_id = $1`, questionID)
	if err != nil {
		t.Fatalf("query llm_error: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Errorf("model %s present as both answer and error", id)
		}
		seen[id] = true
	}
	for _, id := range reg.IDs() {
		if !seen[id] {
			t.Errorf("model %s missing from both answers and errors", id)
		}
	}

	// The failed model must not appear in the response.
	for _, v := range views {
		if v.ModelID == "beta" {
			t.Error("failed model leaked into response records")
		}
	}
}

func TestProcess_LabelsAreBijective(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	clients := map[string]llm.Client{}
	outcomes := map[string]dispatch.Outcome{}
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("model-%d", i)
		clients[id] = &testutil.StubClient{}
		outcomes[id] = dispatch.Outcome{Content: "answer " + id}
	}
	reg := testutil.NewTestRegistry(t, clients)
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	views, err := Process(conn, reg, questionID, testPrompt, outcomes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 5 {
		t.Fatalf("expected 5 records, got %d", len(views))
	}
	for i, v := range views {
		want := fmt.Sprintf("model %c", 'A'+i)
		if v.Label != want {
			t.Errorf("position %d: expected label %q, got %q", i, want, v.Label)
		}
	}
}

func TestProcess_FrontendOrderMatchesResponse(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	clients := map[string]llm.Client{}
	outcomes := map[string]dispatch.Outcome{}
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("m%d", i)
		clients[id] = &testutil.StubClient{}
		outcomes[id] = dispatch.Outcome{Content: "answer " + id}
	}
	reg := testutil.NewTestRegistry(t, clients)
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeRepair)

	views, err := Process(conn, reg, questionID, testPrompt, outcomes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range views {
		var order int
		err := conn.QueryRow(`SELECT frontend_order FROM answer WHERE id = $1`, v.AnswerID).Scan(&order)
		if err != nil {
			t.Fatalf("query answer %d: %v", v.AnswerID, err)
		}
		if order != i {
			t.Errorf("answer %d: persisted order %d, response position %d", v.AnswerID, order, i)
		}
	}
}

func TestProcess_AllModelsFail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	reg := testutil.NewTestRegistry(t, map[string]llm.Client{
		"a": &testutil.StubClient{},
		"b": &testutil.StubClient{},
	})
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	outcomes := map[string]dispatch.Outcome{
		"a": {Err: "auth failure"},
		"b": {Err: "connection refused"},
	}

	views, err := Process(conn, reg, questionID, testPrompt, outcomes)
	if err != nil {
		t.Fatalf("total model failure must not fail the call: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("expected empty response, got %d records", len(views))
	}

	var errCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM llm_error WHERE question_id = $1`, questionID).Scan(&errCount); err != nil {
		t.Fatal(err)
	}
	if errCount != 2 {
		t.Errorf("expected 2 llm_error rows, got %d", errCount)
	}
}

func TestProcess_ErrorRowsCarryPromptAndError(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	reg := testutil.NewTestRegistry(t, map[string]llm.Client{
		"down": &testutil.StubClient{},
	})
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	outcomes := map[string]dispatch.Outcome{
		"down": {Err: "status 429: rate limited"},
	}

	if _, err := Process(conn, reg, questionID, testPrompt, outcomes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var promptText, errText string
	err := conn.QueryRow(`
		SELECT prompt, error FROM llm_error WHERE question_id = $1 AND model_id = 'down'
	`, questionID).Scan(&promptText, &errText)
	if err != nil {
		t.Fatalf("query llm_error: %v", err)
	}
	if promptText != testPrompt {
		t.Errorf("expected prompt persisted, got %q", promptText)
	}
	if errText != "status 429: rate limited" {
		t.Errorf("expected error persisted, got %q", errText)
	}
}

func TestProcess_EmptyRegistry(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	reg := testutil.NewTestRegistry(t, nil)
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	_, err := Process(conn, reg, questionID, testPrompt, map[string]dispatch.Outcome{})
	if !errors.Is(err, ErrNoModels) {
		t.Errorf("expected ErrNoModels, got %v", err)
	}
}

func TestProcess_TooManySuccesses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	clients := map[string]llm.Client{}
	outcomes := map[string]dispatch.Outcome{}
	for i := 0; i < 27; i++ {
		id := fmt.Sprintf("m%02d", i)
		clients[id] = &testutil.StubClient{}
		outcomes[id] = dispatch.Outcome{Content: "ok"}
	}
	reg := testutil.NewTestRegistry(t, clients)
	questionID := testutil.CreateTestQuestion(t, conn, models.TaskCodeCompletion)

	_, err := Process(conn, reg, questionID, testPrompt, outcomes)
	if !errors.Is(err, ErrTooManyAnswers) {
		t.Errorf("expected ErrTooManyAnswers past 26 successes, got %v", err)
	}
}
