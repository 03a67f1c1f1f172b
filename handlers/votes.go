// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lmcode/ledger"
	"github.com/danielhkuo/lmcode/middleware"
	"github.com/danielhkuo/lmcode/models"
)

type VoteHandler struct {
	db *sql.DB
}

func NewVoteHandler(db *sql.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

// Vote handles POST /api/answers/vote. Applies raw vote deltas without
// touching the accepted mark or feedback state.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := ledger.UpdateAnswerVotes(h.db, req.AnswerID, req.Upvotes, req.Downvotes); err != nil {
		answerNotFound(w, err, "update votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Vote recorded"})
}

// Accept handles POST /api/answers/accept. Accepting adds an upvote,
// marks the answer as accepted on its question, and silences any
// feedback left from an earlier rejection.
func (h *VoteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	req, ok := parseAnswerRef(w, r)
	if !ok {
		return
	}

	if err := ledger.UpdateAnswerVotes(h.db, req.AnswerID, 1, 0); err != nil {
		answerNotFound(w, err, "accept answer")
		return
	}
	if err := ledger.SetAcceptedAnswer(h.db, req.AnswerID); err != nil {
		answerNotFound(w, err, "mark accepted answer")
		return
	}
	if err := ledger.SetFeedbackActive(h.db, req.AnswerID, false); err != nil {
		slog.Error("failed to deactivate feedback", "answer_id", req.AnswerID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("answer accepted", "answer_id", req.AnswerID)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Answer accepted"})
}

// Unaccept handles POST /api/answers/unaccept. Reverses the vote delta
// and clears the accepted mark. Feedback deactivated on accept stays
// inactive; only an explicit reject reactivates it.
func (h *VoteHandler) Unaccept(w http.ResponseWriter, r *http.Request) {
	req, ok := parseAnswerRef(w, r)
	if !ok {
		return
	}

	if err := ledger.UpdateAnswerVotes(h.db, req.AnswerID, -1, 0); err != nil {
		answerNotFound(w, err, "unaccept answer")
		return
	}
	if err := ledger.ClearAcceptedAnswer(h.db, req.AnswerID); err != nil {
		slog.Error("failed to clear accepted answer", "answer_id", req.AnswerID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Answer unaccepted"})
}

// Reject handles POST /api/answers/reject. Adds a downvote and
// reactivates the answer's feedback so the reason is visible again.
func (h *VoteHandler) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := parseAnswerRef(w, r)
	if !ok {
		return
	}

	if err := ledger.UpdateAnswerVotes(h.db, req.AnswerID, 0, 1); err != nil {
		answerNotFound(w, err, "reject answer")
		return
	}
	if err := ledger.SetFeedbackActive(h.db, req.AnswerID, true); err != nil {
		slog.Error("failed to activate feedback", "answer_id", req.AnswerID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("answer rejected", "answer_id", req.AnswerID)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Answer rejected"})
}

// Unreject handles POST /api/answers/unreject. Reverses the downvote
// only; feedback state is left as-is.
func (h *VoteHandler) Unreject(w http.ResponseWriter, r *http.Request) {
	req, ok := parseAnswerRef(w, r)
	if !ok {
		return
	}

	if err := ledger.UpdateAnswerVotes(h.db, req.AnswerID, 0, -1); err != nil {
		answerNotFound(w, err, "unreject answer")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Answer unrejected"})
}

// answerNotFound maps ledger lookup failures to a 404, everything else
// to a 500.
func answerNotFound(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, ledger.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found")
		return
	}
	slog.Error("failed to "+action, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

func parseAnswerRef(w http.ResponseWriter, r *http.Request) (models.AnswerRefRequest, bool) {
	var req models.AnswerRefRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}
	if req.AnswerID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_id is required")
		return req, false
	}
	return req, true
}
