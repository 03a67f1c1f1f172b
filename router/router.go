// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/lmcode/cliparse"
	"github.com/danielhkuo/lmcode/handlers"
	"github.com/danielhkuo/lmcode/llm"
	"github.com/danielhkuo/lmcode/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, reg *llm.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db)
	answerHandler := handlers.NewAnswerHandler(db, cfg, reg)
	voteHandler := handlers.NewVoteHandler(db)
	feedbackHandler := handlers.NewFeedbackHandler(db)
	languageHandler := handlers.NewLanguageHandler(db)

	// Health checks
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	// Questions and answer collection
	mux.HandleFunc("POST /api/question", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("POST /api/answers", middleware.WithLogging(answerHandler.CollectAnswers))

	// Votes and accept/reject state
	mux.HandleFunc("POST /api/answers/vote", middleware.WithLogging(voteHandler.Vote))
	mux.HandleFunc("POST /api/answers/accept", middleware.WithLogging(voteHandler.Accept))
	mux.HandleFunc("POST /api/answers/unaccept", middleware.WithLogging(voteHandler.Unaccept))
	mux.HandleFunc("POST /api/answers/reject", middleware.WithLogging(voteHandler.Reject))
	mux.HandleFunc("POST /api/answers/unreject", middleware.WithLogging(voteHandler.Unreject))

	// Feedback
	mux.HandleFunc("POST /api/answers/feedback", middleware.WithLogging(feedbackHandler.UpsertFeedback))

	// Model registry and language suggestions
	mux.HandleFunc("GET /api/models/ids", middleware.WithLogging(answerHandler.ModelIDs))
	mux.HandleFunc("POST /api/add_language", middleware.WithLogging(languageHandler.AddLanguage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lmcode API v1"))
	})

	return mux
}
