package models

import "time"

// Task constants. These are the wire values accepted in the "task" field.
const (
	TaskCodeCompletion    = "Code Completion"
	TaskCodeTranslation   = "Code Translation"
	TaskCodeRepair        = "Code Repair"
	TaskTextToCode        = "Text to Code"
	TaskCodeSummarization = "Code Summarization"
)

// Request types

type CreateQuestionRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Task           string `json:"task"`
	Language       string `json:"language"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type CollectAnswersRequest struct {
	QuestionID     int64  `json:"question_id"`
	Content        string `json:"content"`
	Task           string `json:"task"`
	Language       string `json:"language"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type VoteRequest struct {
	AnswerID  int64 `json:"answer_id"`
	Upvotes   int   `json:"upvotes"`
	Downvotes int   `json:"downvotes"`
}

// AnswerRefRequest carries just an answer id. Used by the accept,
// unaccept, reject, and unreject endpoints.
type AnswerRefRequest struct {
	AnswerID int64 `json:"answer_id"`
}

type UpsertFeedbackRequest struct {
	AnswerID            int64    `json:"answer_id"`
	PredefinedFeedbacks []string `json:"predefined_feedbacks"`
	TextFeedback        string   `json:"text_feedback"`
}

type AddLanguageRequest struct {
	Language string `json:"language"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID int64 `json:"question_id"`
}

// AnswerView is one anonymized answer as shown to the end user. The
// label ("model A", "model B", ...) replaces the raw model id in the
// frontend; FrontendOrder matches the position in the returned slice.
type AnswerView struct {
	Label       string `json:"label"`
	ModelID     string `json:"model_id"`
	DisplayName string `json:"display_name"`
	Content     string `json:"content"`
	AnswerID    int64  `json:"answer_id"`
}

type CollectAnswersResponse struct {
	QuestionID int64        `json:"question_id"`
	Answers    []AnswerView `json:"answers"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type Question struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Language         string    `json:"language,omitempty"`
	SourceLanguage   string    `json:"source_language,omitempty"`
	TargetLanguage   string    `json:"target_language,omitempty"`
	Task             string    `json:"task"`
	IPAddress        string    `json:"-"` // Never expose in JSON
	AcceptedAnswerID *int64    `json:"accepted_answer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Answer struct {
	ID            int64     `json:"id"`
	Content       string    `json:"content"`
	ModelID       string    `json:"model_id"`
	QuestionID    int64     `json:"question_id"`
	FrontendOrder int       `json:"frontend_order"`
	Upvotes       int       `json:"upvotes"`
	Downvotes     int       `json:"downvotes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LLMError is an append-only audit record for one failed model
// invocation. Rows are never updated or deleted.
type LLMError struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	ModelID    string    `json:"model_id"`
	Prompt     string    `json:"prompt"`
	Error      string    `json:"error"`
	CreatedAt  time.Time `json:"created_at"`
}

type Feedback struct {
	ID                  int64     `json:"id"`
	AnswerID            int64     `json:"answer_id"`
	PredefinedFeedbacks []string  `json:"predefined_feedbacks"`
	TextFeedback        string    `json:"text_feedback,omitempty"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
