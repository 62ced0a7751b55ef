package jobs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/titanhire/titanhire/internal/types"
)

// ValidationResult reports the outcome of a stage-input validation. Errors
// lists every violated constraint, not just the first, so callers can
// display the full set.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// ValidateStageInputs checks the stage-specific required fields of in.
// It is pure: it never mutates in, and it performs no generation or
// persistence. A nil or absent record fails with a single error.
func ValidateStageInputs(in *types.StageInputs) ValidationResult {
	if !in.Present() {
		return ValidationResult{Errors: []string{"Stage inputs are required"}}
	}

	var errs []string
	switch in.Stage {
	case types.StagePlan:
		if blank(in.Plan.JobTitle) {
			errs = append(errs, "Job title is required")
		}
		if blank(in.Plan.Department) {
			errs = append(errs, "Department is required")
		}
		if blank(in.Plan.Location) {
			errs = append(errs, "Location is required")
		}
		if blank(in.Plan.Level) {
			errs = append(errs, "Level is required")
		}

	case types.StageAttract:
		if blank(in.Attract.Transcript) {
			errs = append(errs, "Intake call transcript is required")
		}
		if blank(in.Attract.JobTitle) {
			errs = append(errs, "Job title is required")
		}
		if blank(in.Attract.Location) {
			errs = append(errs, "Location is required")
		}
		if blank(in.Attract.Team) {
			errs = append(errs, "Team is required")
		}

	case types.StageAssess:
		if len(in.Assess.InterviewStages) == 0 {
			errs = append(errs, "At least one interview stage is required")
			break
		}
		for i, stage := range in.Assess.InterviewStages {
			if blank(stage.StageName) {
				errs = append(errs, fmt.Sprintf("Stage %d name is required", i+1))
			}
			if blank(stage.PanelMember) {
				errs = append(errs, fmt.Sprintf("Stage %d panel member is required", i+1))
			}
			if blank(stage.AssessmentCriteria) {
				errs = append(errs, fmt.Sprintf("Stage %d assessment criteria is required", i+1))
			}
			if blank(stage.OperatingPrinciple) {
				errs = append(errs, fmt.Sprintf("Stage %d operating principle is required", i+1))
			}
		}

	case types.StageHire:
		if blank(in.Hire.OfferDetails) {
			errs = append(errs, "Offer details are required")
		}
		if blank(in.Hire.InterviewTranscripts) {
			errs = append(errs, "Interview feedback is required")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email has a plausible address shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword checks password strength, returning every violated rule.
func ValidatePassword(password string) ValidationResult {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, "Password must contain at least one number")
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
