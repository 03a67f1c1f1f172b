// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/lmcode/ledger"
	"github.com/danielhkuo/lmcode/middleware"
	"github.com/danielhkuo/lmcode/models"
)

type LanguageHandler struct {
	db *sql.DB
}

func NewLanguageHandler(db *sql.DB) *LanguageHandler {
	return &LanguageHandler{db: db}
}

// AddLanguage handles POST /api/add_language. Suggestions for languages
// missing from the frontend list; repeats bump a counter instead of
// creating duplicate rows.
func (h *LanguageHandler) AddLanguage(w http.ResponseWriter, r *http.Request) {
	var req models.AddLanguageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Language)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "language is required")
		return
	}

	if err := ledger.AddLanguage(h.db, name); err != nil {
		slog.Error("failed to add language", "language", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add language")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "Language added"})
}
