// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prompt

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/lmcode/models"
)

var (
	ErrUnknownTask         = errors.New("unknown task")
	ErrMissingContent      = errors.New("content is required")
	ErrMissingLanguage     = errors.New("language must be set for non-translation tasks")
	ErrMissingLanguagePair = errors.New("both source_language and target_language must be set for translation")
)

// SystemPrompt is the fixed system instruction sent with every request.
const SystemPrompt = "You are a programming assistant skilled in different tasks like code completion, translation, and explanation."

// Task is the closed set of coding-assistance operations.
type Task string

const (
	CodeCompletion    Task = models.TaskCodeCompletion
	CodeTranslation   Task = models.TaskCodeTranslation
	CodeRepair        Task = models.TaskCodeRepair
	TextToCode        Task = models.TaskTextToCode
	CodeSummarization Task = models.TaskCodeSummarization
)

// ParseTask maps a wire value to a Task.
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case CodeCompletion, CodeTranslation, CodeRepair, TextToCode, CodeSummarization:
		return Task(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTask, s)
	}
}

// Input is one question to render. Exactly one language field set is
// valid per task: Language for non-translation tasks, SourceLanguage and
// TargetLanguage for translation.
type Input struct {
	Task           Task
	Content        string
	Language       string
	SourceLanguage string
	TargetLanguage string
}

// Prompt is the rendered pair sent to every model.
type Prompt struct {
	System string
	User   string
}

// Normalize validates the task-dependent language fields and clears the
// irrelevant ones. It must be called before Build and before any row is
// written; a validation error means no dispatch happens at all.
func Normalize(in *Input) error {
	if in.Content == "" {
		return ErrMissingContent
	}

	if in.Task == CodeTranslation {
		if in.SourceLanguage == "" || in.TargetLanguage == "" {
			return ErrMissingLanguagePair
		}
		in.Language = ""
		return nil
	}

	if in.Language == "" {
		return ErrMissingLanguage
	}
	in.SourceLanguage = ""
	in.TargetLanguage = ""
	return nil
}

// Build renders the prompt for a normalized input. Rendering is pure:
// no I/O, deterministic for the same input.
func Build(in Input) (Prompt, error) {
	var user string
	switch in.Task {
	case CodeCompletion:
		user = fmt.Sprintf("Complete the code snippet written in %s: %s", in.Language, in.Content)
	case CodeTranslation:
		user = fmt.Sprintf("Translate the code snippet from %s to %s: %s", in.SourceLanguage, in.TargetLanguage, in.Content)
	case CodeRepair:
		user = fmt.Sprintf("Fix the code snippet written in %s: %s", in.Language, in.Content)
	case TextToCode:
		user = fmt.Sprintf("Generate code written in %s for the following description: %s", in.Language, in.Content)
	case CodeSummarization:
		user = fmt.Sprintf("Summarize the code snippet written in %s: %s", in.Language, in.Content)
	default:
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownTask, in.Task)
	}

	return Prompt{System: SystemPrompt, User: user}, nil
}
