// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: title, content, task, language fields
  - CollectAnswersRequest: question_id plus the fields needed to render prompts
  - VoteRequest: answer_id, upvotes, downvotes deltas
  - AnswerRefRequest: answer_id (accept/unaccept/reject/unreject)
  - UpsertFeedbackRequest: answer_id, predefined_feedbacks, text_feedback
  - AddLanguageRequest: language

# Response Types

Types for JSON responses:

  - CreateQuestionResponse: question_id
  - CollectAnswersResponse: question_id, anonymized answers
  - AnswerView: label, model_id, display_name, content, answer_id
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures mirroring the database rows:

  - Question: one submitted question, immutable except accepted_answer_id
  - Answer: one successful model response with vote counters
  - LLMError: append-only audit record for a failed model invocation
  - Feedback: at most one row per answer, upsert semantics

# Constants

Task values (wire format):

	TaskCodeCompletion    = "Code Completion"
	TaskCodeTranslation   = "Code Translation"
	TaskCodeRepair        = "Code Repair"
	TaskTextToCode        = "Text to Code"
	TaskCodeSummarization = "Code Summarization"
*/
package models
