// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lmcode/cliparse"
	"github.com/danielhkuo/lmcode/collect"
	"github.com/danielhkuo/lmcode/dispatch"
	"github.com/danielhkuo/lmcode/ledger"
	"github.com/danielhkuo/lmcode/llm"
	"github.com/danielhkuo/lmcode/middleware"
	"github.com/danielhkuo/lmcode/models"
	"github.com/danielhkuo/lmcode/prompt"
)

type AnswerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	reg *llm.Registry
}

func NewAnswerHandler(db *sql.DB, cfg cliparse.Config, reg *llm.Registry) *AnswerHandler {
	return &AnswerHandler{db: db, cfg: cfg, reg: reg}
}

// CollectAnswers handles POST /api/answers.
//
// It fans the rendered prompt out to every registered model, records
// each model's answer or failure, and returns the surviving answers in
// randomized, anonymized order. One slow or broken model only costs its
// own entry; the rest of the batch comes back normally.
func (h *AnswerHandler) CollectAnswers(w http.ResponseWriter, r *http.Request) {
	var req models.CollectAnswersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	task, err := prompt.ParseTask(req.Task)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown task: "+req.Task)
		return
	}

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

	exists, err := ledger.QuestionExists(h.db, req.QuestionID)
	if err != nil {
		slog.Error("failed to look up question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	if h.reg.Len() == 0 {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No models configured")
		return
	}

	p, err := prompt.Build(in)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("dispatching prompt",
		"question_id", req.QuestionID,
		"task", task,
		"models", h.reg.Len(),
	)

	outcomes := dispatch.Run(r.Context(), h.reg, p, dispatch.Options{
		Timeout: h.cfg.LLMTimeout,
		Retries: h.cfg.LLMRetries,
		Backoff: h.cfg.LLMBackoff,
	})

	views, err := collect.Process(h.db, h.reg, req.QuestionID, p.User, outcomes)
	if err != nil {
		if errors.Is(err, collect.ErrNoModels) || errors.Is(err, collect.ErrTooManyAnswers) {
			slog.Error("failed to collect answers", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		slog.Error("failed to persist answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record answers")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CollectAnswersResponse{
		QuestionID: req.QuestionID,
		Answers:    views,
	})
}

// ModelIDs handles GET /api/models/ids
func (h *AnswerHandler) ModelIDs(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string][]string{
		"model_ids": h.reg.IDs(),
	})
}
