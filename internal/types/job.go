// Package types provides type definitions for structured data used throughout the titanhire system.
package types

import (
	"time"
)

// Stage identifies one of the four fixed phases of a job's hiring workflow.
type Stage string

// The four workflow stages, nominally traversed in this order. Completion
// order is not enforced; the UI allows revisiting any stage at any time.
const (
	StagePlan    Stage = "plan"
	StageAttract Stage = "attract"
	StageAssess  Stage = "assess"
	StageHire    Stage = "hire"
)

// Stages lists all known stages in nominal order.
var Stages = []Stage{StagePlan, StageAttract, StageAssess, StageHire}

// Valid reports whether s is one of the four known stage identifiers.
func (s Stage) Valid() bool {
	switch s {
	case StagePlan, StageAttract, StageAssess, StageHire:
		return true
	}
	return false
}

// Status is the derived lifecycle status of a job. It is never set
// directly; it is always recomputed from the completed-stage count.
type Status string

// Job statuses. StatusDraft applies only to freshly created jobs; any
// recompute with zero completed stages yields StatusPlan.
const (
	StatusDraft    Status = "draft"
	StatusPlan     Status = "plan"
	StatusAttract  Status = "attract"
	StatusAssess   Status = "assess"
	StatusHire     Status = "hire"
	StatusComplete Status = "complete"
)

// PlanInputs holds the form fields for the plan stage.
type PlanInputs struct {
	JobTitle   string `json:"jobTitle"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Level      string `json:"level"`
	Notes      string `json:"notes,omitempty"`
}

// AttractInputs holds the form fields for the attract stage.
type AttractInputs struct {
	Transcript   string `json:"transcript"`
	JobTitle     string `json:"jobTitle"`
	Location     string `json:"location"`
	Team         string `json:"team"`
	ManagerNotes string `json:"managerNotes,omitempty"`
}

// InterviewStage is one entry in the assess-stage interview plan.
type InterviewStage struct {
	ID                 string `json:"id"`
	StageName          string `json:"stageName"`
	PanelMember        string `json:"panelMember"`
	AssessmentCriteria string `json:"assessmentCriteria"`
	OperatingPrinciple string `json:"operatingPrinciple"`
}

// AssessInputs holds the form fields for the assess stage. Generation
// requires at least one interview stage with all four text fields set.
type AssessInputs struct {
	InterviewStages []InterviewStage `json:"interviewStages"`
}

// HireInputs holds the form fields for the hire stage.
type HireInputs struct {
	OfferDetails          string `json:"offerDetails"`
	InterviewTranscripts  string `json:"interviewTranscripts"`
	CandidateExpectations string `json:"candidateExpectations,omitempty"`
	AdditionalNotes       string `json:"additionalNotes,omitempty"`
}

// JobInputs carries one input record per stage. Every job has all four,
// seeded with defaults at creation.
type JobInputs struct {
	Plan    PlanInputs    `json:"plan"`
	Attract AttractInputs `json:"attract"`
	Assess  AssessInputs  `json:"assess"`
	Hire    HireInputs    `json:"hire"`
}

// PlanOutputs is the generated artifact bundle for the plan stage.
type PlanOutputs struct {
	Checklist      []string `json:"checklist"`
	MarketOverview string   `json:"marketOverview"`
	Skills         []string `json:"skills"`
	Salary         string   `json:"salary"`
	Timeline       string   `json:"timeline"`
}

// AttractOutputs is the generated artifact bundle for the attract stage.
type AttractOutputs struct {
	JobDescription    string   `json:"jobDescription"`
	InternalSpec      string   `json:"internalSpec"`
	InterviewPlan     string   `json:"interviewPlan"`
	Scorecards        string   `json:"scorecards"`
	LinkedInPost      string   `json:"linkedInPost"`
	BooleanString     string   `json:"booleanString"`
	OutreachTemplates string   `json:"outreachTemplates"`
	WhyTitanbay       string   `json:"whyTitanbay"`
	Communities       string   `json:"communities"`
	Checklist         []string `json:"checklist"`
}

// AssessOutputs is the generated artifact bundle for the assess stage.
type AssessOutputs struct {
	FullInterviewProcess string `json:"fullInterviewProcess"`
	InterviewQuestions   string `json:"interviewQuestions"`
	ScorecardTemplate    string `json:"scorecardTemplate"`
}

// HireOutputs is the generated artifact bundle for the hire stage.
type HireOutputs struct {
	PersonalizedOfferLetter string `json:"personalizedOfferLetter"`
	AcceptanceProbability   string `json:"acceptanceProbability"`
	OfferStrengthening      string `json:"offerStrengthening"`
	RedFlags                string `json:"redFlags"`
	OnboardingPrep          string `json:"onboardingPrep"`
}

// JobOutputs carries the optional generated bundle per stage. A stage's
// entry is nil until that stage's generation first succeeds.
type JobOutputs struct {
	Plan    *PlanOutputs    `json:"plan,omitempty"`
	Attract *AttractOutputs `json:"attract,omitempty"`
	Assess  *AssessOutputs  `json:"assess,omitempty"`
	Hire    *HireOutputs    `json:"hire,omitempty"`
}

// StageInputs is a tagged union of per-stage input records. Exactly the
// field matching Stage is expected to be non-nil.
type StageInputs struct {
	Stage   Stage          `json:"stage"`
	Plan    *PlanInputs    `json:"plan,omitempty"`
	Attract *AttractInputs `json:"attract,omitempty"`
	Assess  *AssessInputs  `json:"assess,omitempty"`
	Hire    *HireInputs    `json:"hire,omitempty"`
}

// Present reports whether the record matching the union's stage tag is set.
func (si *StageInputs) Present() bool {
	if si == nil {
		return false
	}
	switch si.Stage {
	case StagePlan:
		return si.Plan != nil
	case StageAttract:
		return si.Attract != nil
	case StageAssess:
		return si.Assess != nil
	case StageHire:
		return si.Hire != nil
	}
	return false
}

// StageOutputs is a tagged union of per-stage output bundles. Exactly the
// field matching Stage is expected to be non-nil.
type StageOutputs struct {
	Stage   Stage           `json:"stage"`
	Plan    *PlanOutputs    `json:"plan,omitempty"`
	Attract *AttractOutputs `json:"attract,omitempty"`
	Assess  *AssessOutputs  `json:"assess,omitempty"`
	Hire    *HireOutputs    `json:"hire,omitempty"`
}

// Present reports whether the bundle matching the union's stage tag is set.
func (so *StageOutputs) Present() bool {
	if so == nil {
		return false
	}
	switch so.Stage {
	case StagePlan:
		return so.Plan != nil
	case StageAttract:
		return so.Attract != nil
	case StageAssess:
		return so.Assess != nil
	case StageHire:
		return so.Hire != nil
	}
	return false
}

// Job is the unit of work representing one open hiring requisition moving
// through the four stages.
type Job struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Department      string     `json:"department"`
	Status          Status     `json:"status"`
	Created         time.Time  `json:"created"`
	LastUpdated     time.Time  `json:"lastUpdated"`
	Inputs          JobInputs  `json:"inputs"`
	Outputs         JobOutputs `json:"outputs"`
	CompletedStages []Stage    `json:"completedStages"`
}

// Listable reports whether the job may appear in a collection. Records
// missing an id or title are filtered at read boundaries, never mutated.
func (j *Job) Listable() bool {
	return j != nil && j.ID != "" && j.Title != ""
}

// StageCompleted reports whether stage is in the completed set.
func (j *Job) StageCompleted(stage Stage) bool {
	for _, s := range j.CompletedStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the job. Lifecycle transforms operate on
// clones so callers never observe a partially updated record.
func (j Job) Clone() Job {
	out := j
	if j.CompletedStages != nil {
		out.CompletedStages = make([]Stage, len(j.CompletedStages))
		copy(out.CompletedStages, j.CompletedStages)
	}
	if j.Inputs.Assess.InterviewStages != nil {
		stages := make([]InterviewStage, len(j.Inputs.Assess.InterviewStages))
		copy(stages, j.Inputs.Assess.InterviewStages)
		out.Inputs.Assess.InterviewStages = stages
	}
	return out
}
