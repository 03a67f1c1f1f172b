// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lmcode/cliparse"
	"github.com/danielhkuo/lmcode/db"
	"github.com/danielhkuo/lmcode/llm"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database; closing it drops everything.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the whole pool on the one in-memory
	// database and serializes concurrent writers, like the real file DB.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5050,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		LLMTimeout:   2 * time.Second,
		LLMRetries:   1,
		MaxTokens:    256,
	}
}

// StubClient is a scriptable llm.Client for handler and processor tests.
type StubClient struct {
	Reply string
	Err   error
	Delay time.Duration
	Calls atomic.Int32
}

func (c *StubClient) Complete(ctx context.Context, system, user string) (string, error) {
	c.Calls.Add(1)

	if c.Delay > 0 {
		select {
		case <-time.After(c.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if c.Err != nil {
		return "", c.Err
	}
	return c.Reply, nil
}

// NewTestRegistry builds a registry from stub clients keyed by model id.
func NewTestRegistry(t *testing.T, clients map[string]llm.Client) *llm.Registry {
	t.Helper()

	var ms []llm.Model
	for id, c := range clients {
		ms = append(ms, llm.Model{ID: id, DisplayName: "Display " + id, Client: c})
	}
	reg, err := llm.NewRegistry(ms)
	if err != nil {
		t.Fatalf("Failed to build test registry: %v", err)
	}
	return reg
}

// CreateTestQuestion inserts a question row and returns its id
func CreateTestQuestion(t *testing.T, conn *sql.DB, task string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO question (title, content, language, task, ip_address)
		VALUES ('Test Question', 'def f(', 'Python', $1, '127.0.0.1')
		RETURNING id
	`, task).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CreateTestAnswer inserts an answer row for a question and returns its id
func CreateTestAnswer(t *testing.T, conn *sql.DB, questionID int64, modelID string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO answer (content, model_id, question_id)
		VALUES ('test answer content', $1, $2)
		RETURNING id
	`, modelID, questionID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
