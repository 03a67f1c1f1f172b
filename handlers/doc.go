// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the lmcode API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - QuestionHandler: Question creation
  - AnswerHandler: Answer collection fan-out and model listing
  - VoteHandler: Votes, accept/unaccept, reject/unreject
  - FeedbackHandler: Per-answer feedback upsert
  - LanguageHandler: Language suggestions

Handlers are created via constructor functions:

	questionHandler := handlers.NewQuestionHandler(db)
	answerHandler := handlers.NewAnswerHandler(db, cfg, registry)

# Question and Answer Flow

A comparison session is two requests:

	POST /api/question → CreateQuestion (validates task + languages, returns question_id)
	POST /api/answers  → CollectAnswers (fans out to all models, returns anonymized answers)

CollectAnswers waits for every registered model to settle, records
answers and failures, and returns the successful answers shuffled and
labeled "model A", "model B", ... so the user votes blind.

# Voting and Feedback

All vote endpoints take an answer_id in the JSON body:

	POST /api/answers/vote     → raw vote deltas
	POST /api/answers/accept   → +1 upvote, mark accepted, deactivate feedback
	POST /api/answers/unaccept → -1 upvote, clear accepted mark
	POST /api/answers/reject   → +1 downvote, activate feedback
	POST /api/answers/unreject → -1 downvote
	POST /api/answers/feedback → upsert the answer's feedback row
*/
package handlers
