// Package generator provides the stage-output generation capability: a
// deterministic template generator and a Gemini-backed one behind a common
// interface.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/titanhire/titanhire/internal/types"
)

// DefaultTimeout bounds a single generation request. Whichever of
// completion and timeout settles first wins; the loser is discarded.
const DefaultTimeout = 30 * time.Second

// JobContext carries job-level fields the per-stage templates reference.
type JobContext struct {
	Title      string
	Department string
}

// Generator turns validated stage inputs into the stage's artifact bundle.
// Callers validate first; invalid inputs must never reach Generate.
type Generator interface {
	Generate(ctx context.Context, in *types.StageInputs, job JobContext) (*types.StageOutputs, error)
}

// GenerationError indicates a failed or timed-out generation request. No
// job state is mutated when it is returned; the user may retry.
type GenerationError struct {
	Stage   types.Stage
	Timeout bool
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Timeout {
		return "Request timeout"
	}
	return fmt.Sprintf("failed to generate %s outputs: %v", e.Stage, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// timeoutGenerator races the inner generator against a deadline. Only the
// first settlement is observed; a late inner result is dropped on the
// buffered channel and garbage collected.
type timeoutGenerator struct {
	inner   Generator
	timeout time.Duration
}

// WithTimeout wraps inner so each request is bounded by timeout. A
// non-positive timeout falls back to DefaultTimeout.
func WithTimeout(inner Generator, timeout time.Duration) Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &timeoutGenerator{inner: inner, timeout: timeout}
}

type generateResult struct {
	out *types.StageOutputs
	err error
}

func (g *timeoutGenerator) Generate(ctx context.Context, in *types.StageInputs, job JobContext) (*types.StageOutputs, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	results := make(chan generateResult, 1)
	go func() {
		out, err := g.inner.Generate(ctx, in, job)
		results <- generateResult{out: out, err: err}
	}()

	select {
	case res := <-results:
		return res.out, res.err
	case <-ctx.Done():
		return nil, &GenerationError{Stage: in.Stage, Timeout: true, Cause: ctx.Err()}
	}
}
