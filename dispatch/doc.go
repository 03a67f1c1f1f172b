// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dispatch fans one prompt out to every registered model.

# Contract

Run starts one goroutine per registered model, gives each attempt the
configured timeout, retries transient failures up to the configured
budget, and joins on all of them:

	outcomes := dispatch.Run(ctx, reg, p, dispatch.Options{
		Timeout: cfg.LLMTimeout,
		Retries: cfg.LLMRetries,
	})

The returned map covers every registered model id with exactly one
terminal Outcome: Content on success, Err after the retry budget is
exhausted. No model's failure or slowness cancels a sibling; the only
wait is the fan-in barrier itself, which is bounded by the per-attempt
timeout times the attempt count.

# Cancellation

Cancelling ctx (client disconnect) stops further attempts cooperatively.
Calls already in flight are cancelled through their per-attempt context;
whatever has settled keeps its result.
*/
package dispatch
