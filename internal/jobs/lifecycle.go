package jobs

import (
	"time"

	"github.com/google/uuid"
	"github.com/titanhire/titanhire/internal/types"
)

// NewJob builds a fresh job record: a new id, all four stage inputs seeded
// with defaults (assess gets one empty interview stage), no outputs, no
// completed stages, status draft.
func NewJob() types.Job {
	now := time.Now()
	return types.Job{
		ID:          uuid.NewString(),
		Status:      types.StatusDraft,
		Created:     now,
		LastUpdated: now,
		Inputs: types.JobInputs{
			Assess: types.AssessInputs{
				InterviewStages: []types.InterviewStage{{ID: uuid.NewString()}},
			},
		},
		Outputs:         types.JobOutputs{},
		CompletedStages: []types.Stage{},
	}
}

// StatusFor derives the job status from the number of completed stages.
// Which stages completed is irrelevant; only the count matters, so stages
// may legally complete out of order.
func StatusFor(completed int) types.Status {
	switch completed {
	case 4:
		return types.StatusComplete
	case 3:
		return types.StatusHire
	case 2:
		return types.StatusAssess
	case 1:
		return types.StatusAttract
	default:
		return types.StatusPlan
	}
}

// CompleteStage returns a new job value recording a successful stage
// completion: the stage's inputs and outputs are replaced, the stage is
// added to the completed set (idempotently; re-completing refreshes
// inputs/outputs without growing the set), status is recomputed from the
// new set size, and LastUpdated is refreshed.
//
// The transform is a single synchronous step; it either returns a fully
// consistent job or an InvalidCompletionError with the input job untouched.
// It does not invoke the generator. Only an already successful generation
// result may be passed in.
func CompleteStage(job types.Job, stage types.Stage, inputs *types.StageInputs, outputs *types.StageOutputs) (types.Job, error) {
	if !stage.Valid() {
		return types.Job{}, &InvalidCompletionError{Stage: stage, Reason: "unknown stage"}
	}
	if inputs == nil || inputs.Stage != stage || !inputs.Present() {
		return types.Job{}, &InvalidCompletionError{Stage: stage, Reason: "missing stage inputs"}
	}
	if outputs == nil || outputs.Stage != stage || !outputs.Present() {
		return types.Job{}, &InvalidCompletionError{Stage: stage, Reason: "missing stage outputs"}
	}

	updated := job.Clone()
	switch stage {
	case types.StagePlan:
		updated.Inputs.Plan = *inputs.Plan
		out := *outputs.Plan
		updated.Outputs.Plan = &out
		// Title and department are editable through the plan form only.
		updated.Title = inputs.Plan.JobTitle
		updated.Department = inputs.Plan.Department
	case types.StageAttract:
		updated.Inputs.Attract = *inputs.Attract
		out := *outputs.Attract
		updated.Outputs.Attract = &out
	case types.StageAssess:
		in := *inputs.Assess
		in.InterviewStages = append([]types.InterviewStage(nil), inputs.Assess.InterviewStages...)
		updated.Inputs.Assess = in
		out := *outputs.Assess
		updated.Outputs.Assess = &out
	case types.StageHire:
		updated.Inputs.Hire = *inputs.Hire
		out := *outputs.Hire
		updated.Outputs.Hire = &out
	}

	if !updated.StageCompleted(stage) {
		updated.CompletedStages = append(updated.CompletedStages, stage)
	}
	updated.Status = StatusFor(len(updated.CompletedStages))
	updated.LastUpdated = time.Now()

	return updated, nil
}
