package generator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/titanhire/titanhire/internal/types"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini generates stage artifacts with the Gemini API, one request per
// artifact section, fanned out concurrently.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Close releases resources held by the client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Generate builds the artifact bundle for the stage tagged in in.
func (g *Gemini) Generate(ctx context.Context, in *types.StageInputs, job JobContext) (*types.StageOutputs, error) {
	if !in.Present() {
		return nil, &GenerationError{Stage: in.Stage, Cause: fmt.Errorf("missing stage inputs")}
	}

	prompts := stagePrompts(in, job)
	if prompts == nil {
		return nil, &GenerationError{Stage: in.Stage, Cause: fmt.Errorf("unknown stage")}
	}

	var mu sync.Mutex
	sections := make(map[string]string, len(prompts))

	eg, egCtx := errgroup.WithContext(ctx)
	for section, prompt := range prompts {
		eg.Go(func() error {
			text, err := g.generateText(egCtx, prompt)
			if err != nil {
				return fmt.Errorf("section %s: %w", section, err)
			}
			mu.Lock()
			sections[section] = text
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, &GenerationError{Stage: in.Stage, Cause: err}
	}

	return assembleOutputs(in.Stage, sections), nil
}

func (g *Gemini) generateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return cleanFences(text), nil
}

// stagePrompts returns one prompt per artifact section for the stage, or
// nil for an unknown stage.
func stagePrompts(in *types.StageInputs, job JobContext) map[string]string {
	switch in.Stage {
	case types.StagePlan:
		p := in.Plan
		role := fmt.Sprintf("%s %s role in the %s team, %s, location %s",
			p.Level, p.JobTitle, p.Department, notesOr(p.Notes), p.Location)
		return map[string]string{
			"checklist":      "Write an intake-call question checklist, one question per line, for a " + role + ".",
			"marketOverview": "Write a hiring market overview for a " + role + ".",
			"skills":         "List the top 5 skills and traits, one per line, for a " + role + ".",
			"salary":         "Summarize salary ranges for a " + role + ".",
			"timeline":       "Estimate the hiring timeline and notice periods for a " + role + ".",
		}

	case types.StageAttract:
		p := in.Attract
		role := fmt.Sprintf("%s role in the %s team, location %s. Intake call transcript:\n%s\nManager notes: %s",
			p.JobTitle, p.Team, p.Location, p.Transcript, p.ManagerNotes)
		return map[string]string{
			"jobDescription":    "Write a public job description for this " + role,
			"internalSpec":      "Write an internal profile specification for this " + role,
			"interviewPlan":     "Outline the interview process for this " + role,
			"scorecards":        "Draft interview scorecards for this " + role,
			"linkedInPost":      "Write a LinkedIn hiring post for this " + role,
			"booleanString":     "Write a boolean sourcing search string for this " + role,
			"outreachTemplates": "Write candidate outreach templates for this " + role,
			"whyTitanbay":       "Write a company value proposition for candidates for this " + role,
			"communities":       "Recommend sourcing channels and communities for this " + role,
			"checklist":         "Write an attract-phase action checklist, one item per line, for this " + role,
		}

	case types.StageAssess:
		var stages strings.Builder
		for i, s := range in.Assess.InterviewStages {
			fmt.Fprintf(&stages, "Stage %d: %s, panel member %s, assessing %s, operating principle %s\n",
				i+1, s.StageName, s.PanelMember, s.AssessmentCriteria, s.OperatingPrinciple)
		}
		role := fmt.Sprintf("the %s position with these interview stages:\n%s", job.Title, stages.String())
		return map[string]string{
			"fullInterviewProcess": "Write the full interview process document for " + role,
			"interviewQuestions":   "Write per-stage interview questions for " + role,
			"scorecardTemplate":    "Write a fill-in interview scorecard template for " + role,
		}

	case types.StageHire:
		p := in.Hire
		offer := fmt.Sprintf("the %s position in %s. Offer details: %s\nInterview feedback: %s\nCandidate expectations: %s\nNotes: %s",
			job.Title, job.Department, p.OfferDetails, p.InterviewTranscripts, p.CandidateExpectations, p.AdditionalNotes)
		return map[string]string{
			"personalizedOfferLetter": "Write a personalized offer letter for " + offer,
			"acceptanceProbability":   "Analyze the offer acceptance probability for " + offer,
			"offerStrengthening":      "Recommend ways to strengthen the offer for " + offer,
			"redFlags":                "Assess risks and red flags for " + offer,
			"onboardingPrep":          "Write an onboarding preparation plan for " + offer,
		}
	}
	return nil
}

func assembleOutputs(stage types.Stage, sections map[string]string) *types.StageOutputs {
	out := &types.StageOutputs{Stage: stage}
	switch stage {
	case types.StagePlan:
		out.Plan = &types.PlanOutputs{
			Checklist:      splitLines(sections["checklist"]),
			MarketOverview: sections["marketOverview"],
			Skills:         splitLines(sections["skills"]),
			Salary:         sections["salary"],
			Timeline:       sections["timeline"],
		}
	case types.StageAttract:
		out.Attract = &types.AttractOutputs{
			JobDescription:    sections["jobDescription"],
			InternalSpec:      sections["internalSpec"],
			InterviewPlan:     sections["interviewPlan"],
			Scorecards:        sections["scorecards"],
			LinkedInPost:      sections["linkedInPost"],
			BooleanString:     sections["booleanString"],
			OutreachTemplates: sections["outreachTemplates"],
			WhyTitanbay:       sections["whyTitanbay"],
			Communities:       sections["communities"],
			Checklist:         splitLines(sections["checklist"]),
		}
	case types.StageAssess:
		out.Assess = &types.AssessOutputs{
			FullInterviewProcess: sections["fullInterviewProcess"],
			InterviewQuestions:   sections["interviewQuestions"],
			ScorecardTemplate:    sections["scorecardTemplate"],
		}
	case types.StageHire:
		out.Hire = &types.HireOutputs{
			PersonalizedOfferLetter: sections["personalizedOfferLetter"],
			AcceptanceProbability:   sections["acceptanceProbability"],
			OfferStrengthening:      sections["offerStrengthening"],
			RedFlags:                sections["redFlags"],
			OnboardingPrep:          sections["onboardingPrep"],
		}
	}
	return out
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanFences removes markdown code block wrappers.
func cleanFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func notesOr(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return "no extra notes"
	}
	return "notes: " + notes
}
