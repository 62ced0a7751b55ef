package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/titanhire/titanhire/internal/types"
)

// Stub is a deterministic generator that formats the stage inputs into
// fixed artifact templates. It is the placeholder for the real AI backend
// and doubles as the offline/test generator.
type Stub struct{}

// NewStub creates a deterministic template generator.
func NewStub() *Stub {
	return &Stub{}
}

// Generate builds the artifact bundle for the stage tagged in in.
func (s *Stub) Generate(_ context.Context, in *types.StageInputs, job JobContext) (*types.StageOutputs, error) {
	if !in.Present() {
		return nil, &GenerationError{Stage: in.Stage, Cause: fmt.Errorf("missing stage inputs")}
	}

	out := &types.StageOutputs{Stage: in.Stage}
	switch in.Stage {
	case types.StagePlan:
		out.Plan = buildPlanOutputs(in.Plan)
	case types.StageAttract:
		out.Attract = buildAttractOutputs(in.Attract)
	case types.StageAssess:
		out.Assess = buildAssessOutputs(in.Assess, job)
	case types.StageHire:
		out.Hire = buildHireOutputs(job)
	default:
		return nil, &GenerationError{Stage: in.Stage, Cause: fmt.Errorf("unknown stage")}
	}
	return out, nil
}

func buildPlanOutputs(in *types.PlanInputs) *types.PlanOutputs {
	return &types.PlanOutputs{
		Checklist: []string{
			fmt.Sprintf("What are the key responsibilities for a %s?", in.JobTitle),
			fmt.Sprintf("What skills are essential vs nice-to-have for %s level?", in.Level),
			"What does success look like in the first 90 days?",
			fmt.Sprintf("What challenges is the %s team currently facing?", in.Department),
			"What growth opportunities exist in this role?",
			"What is the team structure and reporting lines?",
			"What tools and technologies will they be using?",
			"What is the interview process and timeline?",
		},
		MarketOverview: fmt.Sprintf(`**Market Analysis for %s in %s:**

Based on current market data, %s %s roles in %s are in high demand. Key insights will be generated based on real-time market analysis.

**Target Companies:**
Analysis of competitor landscape and target companies will be provided based on role requirements and location.`,
			in.JobTitle, in.Location, in.Level, in.JobTitle, in.Location),
		Skills: []string{
			fmt.Sprintf("Core competencies for %s", in.JobTitle),
			fmt.Sprintf("%s-level experience requirements", in.Level),
			"Industry-specific knowledge",
			"Leadership and collaboration skills",
			"Technical and analytical capabilities",
		},
		Salary: fmt.Sprintf(`**%s Market Rates for %s %s:**

Salary data will be generated based on current market analysis and role requirements.`,
			in.Location, in.Level, in.JobTitle),
		Timeline: fmt.Sprintf(`**Hiring Timeline for %s %s:**

Timeline estimates will be provided based on role complexity and market conditions.`,
			in.Level, in.JobTitle),
	}
}

func buildAttractOutputs(in *types.AttractInputs) *types.AttractOutputs {
	return &types.AttractOutputs{
		JobDescription: fmt.Sprintf(`**%s**
%s | %s

Job description will be generated based on intake call transcript and role requirements.`,
			in.JobTitle, in.Team, in.Location),
		InternalSpec: fmt.Sprintf(`**Internal Profile Specification for %s**

Profile specification will be generated based on role requirements and team needs.`, in.JobTitle),
		InterviewPlan: fmt.Sprintf(`**Interview Process for %s**

Interview plan will be generated based on role requirements and assessment criteria.`, in.JobTitle),
		Scorecards: fmt.Sprintf(`**Interview Scorecards for %s**

Scorecards will be generated based on role competencies and evaluation criteria.`, in.JobTitle),
		LinkedInPost: fmt.Sprintf(`We're hiring a %s in %s!

LinkedIn post content will be generated based on role details and company messaging.`,
			in.JobTitle, in.Location),
		BooleanString: "Boolean search string will be generated based on role requirements and location.",
		OutreachTemplates: fmt.Sprintf(`**Outreach Templates for %s**

Personalized outreach templates will be generated based on role and target candidates.`, in.JobTitle),
		WhyTitanbay: `**Why Join Our Company?**

Company value proposition will be generated based on role and team context.`,
		Communities: fmt.Sprintf(`**Candidate Sourcing Strategy for %s**

Sourcing recommendations will be generated based on role requirements and target market.`, in.JobTitle),
		Checklist: []string{
			fmt.Sprintf("Review job description for %s", in.JobTitle),
			"Set up interview panels and brief interviewers",
			"Create role-specific scorecards",
			"Post job on relevant platforms",
			"Prepare sourcing strategy",
			"Set up outreach templates",
			"Identify target companies",
			"Plan sourcing activities",
			"Create interview guide",
			"Set up tracking systems",
		},
	}
}

func buildAssessOutputs(in *types.AssessInputs, job JobContext) *types.AssessOutputs {
	title := job.Title
	if title == "" {
		title = "POSITION"
	}

	var process strings.Builder
	fmt.Fprintf(&process, `**INTERVIEW PROCESS FOR %s**

**Overview:**
This interview process consists of %d structured stages, each designed to assess specific competencies and operating principles.
`, strings.ToUpper(title), len(in.InterviewStages))
	for i, stage := range in.InterviewStages {
		fmt.Fprintf(&process, `
**Stage %d: %s**
• **Panel Member:** %s
• **Assessment Focus:** %s
• **Operating Principle:** %s
• **Duration:** 45-60 minutes
`, i+1, stage.StageName, stage.PanelMember, stage.AssessmentCriteria, stage.OperatingPrinciple)
	}
	process.WriteString(`
**Process Flow:**
1. Pre-interview preparation and candidate briefing
2. Sequential interview stages with designated panel members
3. Individual scoring and feedback collection
4. Panel debrief and consensus building
5. Final recommendation and next steps`)

	var questions strings.Builder
	fmt.Fprintf(&questions, "**INTERVIEW QUESTIONS FOR %s**\n", strings.ToUpper(title))
	for i, stage := range in.InterviewStages {
		fmt.Fprintf(&questions, `
**STAGE %d: %s**
**Panel Member:** %s
**Operating Principle:** %s

**Assessment Questions:**
• Tell me about your experience with %s
• Describe a situation where %s was important
• How do you approach %s challenges?

**Follow-up Questions:**
• What was the specific outcome?
• What would you do differently next time?
• How did you measure success?
`, i+1, strings.ToUpper(stage.StageName), stage.PanelMember, stage.OperatingPrinciple,
			strings.ToLower(stage.AssessmentCriteria), strings.ToLower(stage.OperatingPrinciple),
			strings.ToLower(stage.AssessmentCriteria))
	}

	var scorecard strings.Builder
	fmt.Fprintf(&scorecard, `**INTERVIEW SCORECARD**

**Candidate Information:**
Name: ________________________
Position: %s
Date: ________________________
`, title)
	for i, stage := range in.InterviewStages {
		fmt.Fprintf(&scorecard, `
**STAGE %d: %s**
**Panel Member:** %s

**%s Assessment** (1-5 scale)
Score: ___
Evidence/Examples:
_________________________________________________

**%s Competency** (1-5 scale)
Score: ___
Evidence/Examples:
_________________________________________________

**Overall Assessment:**
☐ Strong Yes ☐ Yes ☐ Maybe ☐ No
`, i+1, strings.ToUpper(stage.StageName), stage.PanelMember, stage.OperatingPrinciple, stage.AssessmentCriteria)
	}
	scorecard.WriteString(`
**FINAL RECOMMENDATION:**
☐ Proceed with offer
☐ Request additional assessment
☐ Decline with feedback

**Notes:**
_________________________________________________`)

	return &types.AssessOutputs{
		FullInterviewProcess: process.String(),
		InterviewQuestions:   questions.String(),
		ScorecardTemplate:    scorecard.String(),
	}
}

func buildHireOutputs(job JobContext) *types.HireOutputs {
	title := job.Title
	if title == "" {
		title = "[Job Title]"
	}
	department := job.Department
	if department == "" {
		department = "[Department]"
	}
	headline := job.Title
	if headline == "" {
		headline = "POSITION"
	}

	return &types.HireOutputs{
		PersonalizedOfferLetter: fmt.Sprintf(`**OFFER LETTER FOR %s**

Dear [Candidate Name],

We are pleased to extend an offer for the position of %s in our %s team.

**Position Details:**
• Role: %s
• Department: %s
• Start Date: [To be determined]
• Reporting to: [Hiring Manager]

**Compensation Package:**
Details will be generated based on offer parameters and market data.

**Next Steps:**
This offer is subject to final approval and reference checks. We look forward to discussing the details with you.

Best regards,
[Hiring Manager Name]`, strings.ToUpper(headline), title, department, title, department),
		AcceptanceProbability: fmt.Sprintf(`**OFFER ACCEPTANCE ANALYSIS FOR %s**

Acceptance probability analysis will be generated based on interview feedback and candidate expectations.

**Key Factors:**
• Interview performance and engagement
• Compensation alignment with expectations
• Cultural fit assessment
• Competing opportunities
• Role progression alignment`, headline),
		OfferStrengthening: `**OFFER OPTIMIZATION RECOMMENDATIONS**

Recommendations will be generated based on candidate profile and interview insights.

**Areas to Consider:**
• Compensation adjustments
• Benefits enhancement
• Role clarification
• Growth opportunities
• Start date flexibility`,
		RedFlags: fmt.Sprintf(`**RISK ASSESSMENT FOR %s**

Risk factors and red flags will be identified based on interview feedback and candidate behavior.

**Monitoring Areas:**
• Response patterns
• Reference feedback
• Negotiation approach
• Commitment indicators`, headline),
		OnboardingPrep: fmt.Sprintf(`**ONBOARDING PREPARATION FOR %s**

**Pre-Start Checklist:**
☐ Welcome package preparation
☐ IT equipment setup
☐ System access provisioning
☐ First-day agenda planning
☐ Workspace preparation

**Week 1 Plan:**
☐ Welcome and orientation
☐ Team introductions
☐ Role-specific training
☐ Initial project assignment
☐ Regular check-ins setup

**30-Day Milestones:**
☐ Performance expectations review
☐ Goal setting session
☐ Team integration assessment
☐ Feedback collection
☐ Career development planning`, headline),
	}
}
