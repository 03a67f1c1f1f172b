// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/lmcode/llm"
	"github.com/danielhkuo/lmcode/prompt"
)

// Outcome is the terminal result of one model's invocation: either the
// completion text or the final error string after the retry budget is
// exhausted. Exactly one of the two is set.
type Outcome struct {
	Content string
	Err     string
}

// Failed reports whether the model ended in a failure outcome.
func (o Outcome) Failed() bool {
	return o.Err != ""
}

// Options controls per-call behavior. Timeout bounds each attempt;
// Retries is the number of additional attempts after the first.
type Options struct {
	Timeout time.Duration
	Retries int
	Backoff time.Duration
}

// Run sends the prompt to every registered model concurrently and waits
// for all of them to settle. The returned map has exactly one entry per
// registered model id: a slow, failing, or hung model never drops its
// entry and never delays a sibling beyond the join barrier.
//
// Cancelling ctx stops further attempts; models already past their last
// attempt keep their result, the rest settle with the context error.
func Run(ctx context.Context, reg *llm.Registry, p prompt.Prompt, opts Options) map[string]Outcome {
	ids := reg.IDs()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		outcomes = make(map[string]Outcome, len(ids))
	)

	for _, id := range ids {
		m, ok := reg.Lookup(id)
		if !ok {
			// Registry is immutable, so ids always resolve.
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			out := invoke(ctx, m, p, opts)

			mu.Lock()
			outcomes[m.ID] = out
			mu.Unlock()
		}()
	}

	wg.Wait()
	return outcomes
}

// invoke runs one model's attempt loop to a terminal outcome.
func invoke(ctx context.Context, m llm.Model, p prompt.Prompt, opts Options) Outcome {
	var lastErr error

	attempts := opts.Retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Outcome{Err: err.Error()}
		}

		callCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
		content, err := m.Client.Complete(callCtx, p.System, p.User)
		cancel()

		if err == nil {
			return Outcome{Content: content}
		}
		lastErr = err

		slog.Warn("model call failed",
			"model_id", m.ID,
			"attempt", attempt,
			"of", attempts,
			"error", err,
		)

		if attempt < attempts && opts.Backoff > 0 {
			select {
			case <-time.After(opts.Backoff):
			case <-ctx.Done():
				return Outcome{Err: ctx.Err().Error()}
			}
		}
	}

	return Outcome{Err: lastErr.Error()}
}
