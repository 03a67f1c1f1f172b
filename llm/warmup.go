// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package llm

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const warmupPrompt = "Reply with the single word: ready"

// Warmup issues one small completion per registered model and returns a
// registry containing only the models that answered. A model that fails
// its connectivity check is excluded and logged; the check never fails
// the whole startup.
func (r *Registry) Warmup(ctx context.Context, timeout time.Duration) *Registry {
	type result struct {
		id string
		ok bool
	}

	results := make(chan result, r.Len())
	var wg sync.WaitGroup

	for _, id := range r.order {
		m := r.byID[id]
		wg.Add(1)
		go func() {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			_, err := m.Client.Complete(callCtx, "", warmupPrompt)
			if err != nil {
				slog.Warn("model failed warm-up, excluding from registry", "model_id", m.ID, "error", err)
				results <- result{id: m.ID, ok: false}
				return
			}
			results <- result{id: m.ID, ok: true}
		}()
	}

	wg.Wait()
	close(results)

	healthy := make(map[string]bool, r.Len())
	for res := range results {
		healthy[res.id] = res.ok
	}

	var kept []Model
	for _, id := range r.order {
		if healthy[id] {
			kept = append(kept, r.byID[id])
		}
	}

	warmed, err := NewRegistry(kept)
	if err != nil {
		// Ids were unique in the source registry, so this cannot happen.
		slog.Error("warm-up registry rebuild failed", "error", err)
		return r
	}

	slog.Info("model warm-up complete", "registered", r.Len(), "healthy", warmed.Len())
	return warmed
}
