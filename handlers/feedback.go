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
)

type FeedbackHandler struct {
	db *sql.DB
}

func NewFeedbackHandler(db *sql.DB) *FeedbackHandler {
	return &FeedbackHandler{db: db}
}

// UpsertFeedback handles POST /api/answers/feedback. Each answer keeps
// at most one feedback row; a resubmission overwrites the payload but
// leaves the active flag alone, since accept/reject own that state.
func (h *FeedbackHandler) UpsertFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AnswerID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_id is required")
		return
	}

	exists, err := ledger.AnswerExists(h.db, req.AnswerID)
	if err != nil {
		slog.Error("failed to look up answer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found")
		return
	}

	if err := ledger.UpsertFeedback(h.db, req.AnswerID, req.PredefinedFeedbacks, req.TextFeedback); err != nil {
		slog.Error("failed to save feedback", "answer_id", req.AnswerID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	slog.Info("feedback saved", "answer_id", req.AnswerID)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Feedback saved"})
}
