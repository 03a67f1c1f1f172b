// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrDuplicateModel = errors.New("duplicate model id")
	ErrUnknownModel   = errors.New("unknown model id")
)

// Client sends one prompt to an LLM backend and returns the reply text.
// Implementations must respect context cancellation and deadlines; the
// dispatcher applies a per-call timeout through the context.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Model is one registered backend: a stable id, the name shown after
// de-anonymization, and the client that reaches it.
type Model struct {
	ID          string
	DisplayName string
	Client      Client
}

// Registry holds the configured models. It is built once at startup and
// read-only afterwards, so concurrent reads need no synchronization.
type Registry struct {
	byID  map[string]Model
	order []string
}

// NewRegistry builds a registry from the given models. Model ids must be
// unique; registration order is preserved by IDs.
func NewRegistry(models []Model) (*Registry, error) {
	r := &Registry{byID: make(map[string]Model, len(models))}
	for _, m := range models {
		if _, exists := r.byID[m.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateModel, m.ID)
		}
		if m.DisplayName == "" {
			m.DisplayName = m.ID
		}
		r.byID[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r, nil
}

// IDs returns the registered model ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Lookup returns the model for the given id.
func (r *Registry) Lookup(id string) (Model, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// DisplayName returns the display name for a model id, or the id itself
// if the model is not registered.
func (r *Registry) DisplayName(id string) string {
	if m, ok := r.byID[id]; ok {
		return m.DisplayName
	}
	return id
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.order)
}
