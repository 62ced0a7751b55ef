// Package jobs provides stage-input validation and the job lifecycle transform.
package jobs

import (
	"fmt"

	"github.com/titanhire/titanhire/internal/types"
)

// InvalidCompletionError indicates a stage-completion call with a missing
// or malformed stage, inputs, or outputs. Callers must not apply a partial
// update when this is returned.
type InvalidCompletionError struct {
	Stage  types.Stage
	Reason string
}

func (e *InvalidCompletionError) Error() string {
	return fmt.Sprintf("invalid stage completion for %q: %s", e.Stage, e.Reason)
}

// InvalidJobError indicates a collection operation on a job record with a
// missing id.
type InvalidJobError struct {
	Op string
}

func (e *InvalidJobError) Error() string {
	return fmt.Sprintf("invalid job for %s: missing id", e.Op)
}
