// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the lmcode API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, registry)

# Endpoints

Health:

	GET /health
	GET /api/health

Questions and answers:

	POST /api/question - Create a question
	POST /api/answers  - Fan out to all models and collect answers

Votes (all take answer_id in the JSON body):

	POST /api/answers/vote     - Raw vote deltas
	POST /api/answers/accept   - Accept an answer
	POST /api/answers/unaccept - Take an acceptance back
	POST /api/answers/reject   - Reject an answer
	POST /api/answers/unreject - Take a rejection back

Feedback and metadata:

	POST /api/answers/feedback - Upsert per-answer feedback
	GET  /api/models/ids       - List registered model ids
	POST /api/add_language     - Suggest a missing language

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db)
	answerHandler := handlers.NewAnswerHandler(db, cfg, registry)
	voteHandler := handlers.NewVoteHandler(db)

The answer handler additionally receives the model registry built at
startup.
*/
package router
