// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lmcode/ledger"
	"github.com/danielhkuo/lmcode/middleware"
	"github.com/danielhkuo/lmcode/models"
	"github.com/danielhkuo/lmcode/prompt"
)

type QuestionHandler struct {
	db *sql.DB
}

func NewQuestionHandler(db *sql.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

// CreateQuestion handles POST /api/question
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	task, err := prompt.ParseTask(req.Task)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown task: "+req.Task)
		return
	}

	// Validate the task-dependent language fields before any row is
	// written; Normalize clears whichever set does not apply.
	in := prompt.Input{
		Task:           task,
		Content:        req.Content,
		Language:       req.Language,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}
	if err := prompt.Normalize(&in); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	questionID, err := ledger.InsertQuestion(
		h.db,
		req.Title,
		in.Content,
		in.Language,
		in.SourceLanguage,
		in.TargetLanguage,
		string(task),
		middleware.GetClientIP(r),
	)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID, "task", task)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: questionID,
	})
}
