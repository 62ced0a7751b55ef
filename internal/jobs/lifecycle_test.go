package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanhire/titanhire/internal/types"
)

func planInputs() *types.StageInputs {
	return &types.StageInputs{
		Stage: types.StagePlan,
		Plan: &types.PlanInputs{
			JobTitle:   "Backend Engineer",
			Department: "Engineering",
			Location:   "London",
			Level:      "Senior",
		},
	}
}

func planOutputs() *types.StageOutputs {
	return &types.StageOutputs{
		Stage: types.StagePlan,
		Plan: &types.PlanOutputs{
			Checklist:      []string{"What does success look like?"},
			MarketOverview: "overview",
			Skills:         []string{"Go"},
			Salary:         "salary",
			Timeline:       "timeline",
		},
	}
}

func attractInputs() *types.StageInputs {
	return &types.StageInputs{
		Stage: types.StageAttract,
		Attract: &types.AttractInputs{
			Transcript: "intake call notes",
			JobTitle:   "Backend Engineer",
			Location:   "London",
			Team:       "Platform",
		},
	}
}

func attractOutputs() *types.StageOutputs {
	return &types.StageOutputs{
		Stage:   types.StageAttract,
		Attract: &types.AttractOutputs{JobDescription: "jd", Checklist: []string{"post job"}},
	}
}

func assessInputs() *types.StageInputs {
	return &types.StageInputs{
		Stage: types.StageAssess,
		Assess: &types.AssessInputs{
			InterviewStages: []types.InterviewStage{{
				ID:                 "s1",
				StageName:          "Technical Deep Dive",
				PanelMember:        "Dana",
				AssessmentCriteria: "System design",
				OperatingPrinciple: "Raise the bar",
			}},
		},
	}
}

func assessOutputs() *types.StageOutputs {
	return &types.StageOutputs{
		Stage:  types.StageAssess,
		Assess: &types.AssessOutputs{FullInterviewProcess: "process", InterviewQuestions: "questions", ScorecardTemplate: "scorecard"},
	}
}

func hireInputs() *types.StageInputs {
	return &types.StageInputs{
		Stage: types.StageHire,
		Hire: &types.HireInputs{
			OfferDetails:         "base + equity",
			InterviewTranscripts: "strong across the panel",
		},
	}
}

func hireOutputs() *types.StageOutputs {
	return &types.StageOutputs{
		Stage: types.StageHire,
		Hire:  &types.HireOutputs{PersonalizedOfferLetter: "offer", OnboardingPrep: "prep"},
	}
}

func TestNewJob(t *testing.T) {
	job := NewJob()

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, types.StatusDraft, job.Status)
	assert.Empty(t, job.CompletedStages)
	assert.NotNil(t, job.CompletedStages)
	assert.Nil(t, job.Outputs.Plan)
	assert.False(t, job.Created.IsZero())

	// The assess form starts with one blank interview stage row.
	require.Len(t, job.Inputs.Assess.InterviewStages, 1)
	assert.NotEmpty(t, job.Inputs.Assess.InterviewStages[0].ID)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		completed int
		want      types.Status
	}{
		{0, types.StatusPlan},
		{1, types.StatusAttract},
		{2, types.StatusAssess},
		{3, types.StatusHire},
		{4, types.StatusComplete},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.completed))
	}
}

func TestCompleteStage(t *testing.T) {
	t.Run("plan completion sets title and department", func(t *testing.T) {
		job := NewJob()

		updated, err := CompleteStage(job, types.StagePlan, planInputs(), planOutputs())
		require.NoError(t, err)

		assert.Equal(t, "Backend Engineer", updated.Title)
		assert.Equal(t, "Engineering", updated.Department)
		assert.Equal(t, types.StatusAttract, updated.Status)
		assert.Equal(t, []types.Stage{types.StagePlan}, updated.CompletedStages)
		require.NotNil(t, updated.Outputs.Plan)
		assert.Equal(t, "overview", updated.Outputs.Plan.MarketOverview)

		// Input job is untouched.
		assert.Equal(t, types.StatusDraft, job.Status)
		assert.Empty(t, job.CompletedStages)
	})

	t.Run("re-completion refreshes without growing the set", func(t *testing.T) {
		job := NewJob()
		job, err := CompleteStage(job, types.StagePlan, planInputs(), planOutputs())
		require.NoError(t, err)

		in := planInputs()
		in.Plan.JobTitle = "Staff Engineer"
		out := planOutputs()
		out.Plan.MarketOverview = "refreshed overview"

		updated, err := CompleteStage(job, types.StagePlan, in, out)
		require.NoError(t, err)

		assert.Equal(t, []types.Stage{types.StagePlan}, updated.CompletedStages)
		assert.Equal(t, types.StatusAttract, updated.Status)
		assert.Equal(t, "Staff Engineer", updated.Title)
		assert.Equal(t, "refreshed overview", updated.Outputs.Plan.MarketOverview)
	})

	t.Run("stages may complete out of order", func(t *testing.T) {
		job := NewJob()

		// Hire first: count 1 means attract, regardless of which stage.
		updated, err := CompleteStage(job, types.StageHire, hireInputs(), hireOutputs())
		require.NoError(t, err)
		assert.Equal(t, types.StatusAttract, updated.Status)
		assert.Equal(t, []types.Stage{types.StageHire}, updated.CompletedStages)

		updated, err = CompleteStage(updated, types.StagePlan, planInputs(), planOutputs())
		require.NoError(t, err)
		assert.Equal(t, types.StatusAssess, updated.Status)
	})

	t.Run("unknown stage rejected", func(t *testing.T) {
		_, err := CompleteStage(NewJob(), types.Stage("review"), planInputs(), planOutputs())
		var invalid *InvalidCompletionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "unknown stage", invalid.Reason)
	})

	t.Run("mismatched inputs rejected", func(t *testing.T) {
		_, err := CompleteStage(NewJob(), types.StageAttract, planInputs(), attractOutputs())
		var invalid *InvalidCompletionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "missing stage inputs", invalid.Reason)
	})

	t.Run("nil outputs rejected", func(t *testing.T) {
		_, err := CompleteStage(NewJob(), types.StagePlan, planInputs(), nil)
		var invalid *InvalidCompletionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "missing stage outputs", invalid.Reason)
	})
}

func TestFullWorkflowInOrder(t *testing.T) {
	job := NewJob()

	job, err := CompleteStage(job, types.StagePlan, planInputs(), planOutputs())
	require.NoError(t, err)
	assert.Equal(t, types.StatusAttract, job.Status)

	job, err = CompleteStage(job, types.StageAttract, attractInputs(), attractOutputs())
	require.NoError(t, err)
	assert.Equal(t, types.StatusAssess, job.Status)

	job, err = CompleteStage(job, types.StageAssess, assessInputs(), assessOutputs())
	require.NoError(t, err)
	assert.Equal(t, types.StatusHire, job.Status)

	job, err = CompleteStage(job, types.StageHire, hireInputs(), hireOutputs())
	require.NoError(t, err)
	assert.Equal(t, types.StatusComplete, job.Status)

	assert.Len(t, job.CompletedStages, 4)
	assert.NotNil(t, job.Outputs.Plan)
	assert.NotNil(t, job.Outputs.Attract)
	assert.NotNil(t, job.Outputs.Assess)
	assert.NotNil(t, job.Outputs.Hire)
}
