// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package collect

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/danielhkuo/lmcode/dispatch"
	"github.com/danielhkuo/lmcode/ledger"
	"github.com/danielhkuo/lmcode/llm"
	"github.com/danielhkuo/lmcode/models"
)

// maxLabels bounds the opaque label alphabet ("model A" .. "model Z").
// More than 26 successful models is a known limit of the labeling
// scheme; the call fails loudly instead of wrapping around.
const maxLabels = 26

var (
	ErrNoModels       = errors.New("no models registered")
	ErrTooManyAnswers = errors.New("more successful answers than available labels")
)

// Process turns the dispatcher's outcome map into ledger rows and the
// anonymized response sequence. Successes become answer rows, failures
// become llm_error rows, then one random permutation drives both the
// label assignment and the persisted frontend_order, so a later vote by
// answer_id matches what the user saw.
func Process(conn *sql.DB, reg *llm.Registry, questionID int64, userPrompt string, outcomes map[string]dispatch.Outcome) ([]models.AnswerView, error) {
	if reg.Len() == 0 {
		return nil, ErrNoModels
	}

	var views []models.AnswerView

	// Persist in registry order so reruns are deterministic up to the
	// shuffle below.
	for _, modelID := range reg.IDs() {
		out, ok := outcomes[modelID]
		if !ok {
			// The dispatcher guarantees an outcome per id; treat a gap
			// as a failure so the audit trail stays complete.
			out = dispatch.Outcome{Err: "no outcome recorded"}
		}

		if out.Failed() {
			if _, err := ledger.InsertLLMError(conn, questionID, modelID, userPrompt, out.Err); err != nil {
				return nil, fmt.Errorf("record model failure: %w", err)
			}
			slog.Info("model failure recorded", "question_id", questionID, "model_id", modelID)
			continue
		}

		answerID, err := ledger.InsertAnswer(conn, questionID, modelID, out.Content)
		if err != nil {
			return nil, fmt.Errorf("record model answer: %w", err)
		}
		views = append(views, models.AnswerView{
			ModelID:     modelID,
			DisplayName: reg.DisplayName(modelID),
			Content:     out.Content,
			AnswerID:    answerID,
		})
	}

	if len(views) > maxLabels {
		return nil, fmt.Errorf("%w: %d", ErrTooManyAnswers, len(views))
	}

	// One permutation for both the labels and the persisted order.
	rand.Shuffle(len(views), func(i, j int) {
		views[i], views[j] = views[j], views[i]
	})

	for i := range views {
		views[i].Label = fmt.Sprintf("model %c", 'A'+i)
		if err := ledger.UpdateAnswerFrontendOrder(conn, views[i].AnswerID, i); err != nil {
			return nil, fmt.Errorf("persist display order: %w", err)
		}
	}

	slog.Info("answers collected",
		"question_id", questionID,
		"succeeded", len(views),
		"failed", reg.Len()-len(views),
	)

	return views, nil
}
