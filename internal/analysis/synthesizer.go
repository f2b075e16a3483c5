package analysis

import (
	"strings"

	"github.com/paperpilot/paperpilot/internal/extract"
)

// overviewFallback is returned when nothing in the document names what kind
// of form it is.
const overviewFallback = "Document Analysis"

// overviewRules map keyword families to canonical document titles, checked
// in order.
var overviewRules = []struct {
	keywords []string
	title    string
}{
	{[]string{"application", "form", "apply"}, "Application Form"},
	{[]string{"registration", "register"}, "Registration Form"},
	{[]string{"declaration", "undertaking", "affidavit"}, "Declaration Form"},
}

// stepReasons give the canonical "why this step exists" sentence per
// category.
var stepReasons = map[Category]string{
	CategoryIdentity:     "To identify who is applying for this form.",
	CategoryContact:      "To communicate important updates and notifications.",
	CategoryAddress:      "To verify the applicant's place of residence.",
	CategoryAcademic:     "To assess eligibility or background.",
	CategoryVerification: "To verify authenticity of submitted details.",
	CategoryPreferences:  "To process your selections correctly.",
	CategoryDeclarations: "To confirm that provided information is correct.",
}

const defaultStepReason = "This information is required to complete the application."

// Analyze runs the heuristic text pipeline end to end: normalization, field
// detection, and step synthesis. An empty or unrecognizable document yields
// a valid plan with zero steps.
func Analyze(text string, ctx *Context) *ActionPlan {
	cleaned := Clean(text)
	fields := DetectFields(cleaned)
	return Synthesize(fields, cleaned, ctx)
}

// Synthesize groups detected labels into ordered steps with policy and
// guidance attached. Step order follows the first appearance of each
// category in the label sequence; ids start at 1.
func Synthesize(labels []string, text string, ctx *Context) *ActionPlan {
	var categoryOrder []Category
	grouped := map[Category][]string{}
	for _, label := range labels {
		category := ClassifyField(label)
		if _, ok := grouped[category]; !ok {
			categoryOrder = append(categoryOrder, category)
		}
		grouped[category] = append(grouped[category], label)
	}

	steps := make([]Step, 0, len(categoryOrder))
	for i, category := range categoryOrder {
		categoryLabels := grouped[category]
		risk, reason, tip := RiskForCategory(category)

		guidance := make([]FieldGuidance, 0, len(categoryLabels))
		for _, label := range categoryLabels {
			guidance = append(guidance, FieldGuidance{
				Label:           label,
				Tip:             fieldTip(label),
				SuggestedAnswer: SuggestAnswer(label),
			})
		}

		steps = append(steps, Step{
			ID:             i + 1,
			Title:          category,
			Required:       DetermineRequired(category, ctx),
			Risk:           risk,
			RiskReason:     reason,
			RemediationTip: tip,
			WhatToDo:       "Fill: " + strings.Join(categoryLabels, ", "),
			Fields:         guidance,
			Companion:      companionFor(category),
		})
	}

	return buildPlan(inferOverview(text), steps)
}

// SynthesizeFormFields handles the structured-extraction path: documents
// exposing native fillable fields get exactly one required step, and the
// user fills the live form controls instead of textual suggestions.
func SynthesizeFormFields(fields []extract.FormField) *ActionPlan {
	if len(fields) == 0 {
		return buildPlan(overviewFallback, nil)
	}

	labels := make([]string, 0, len(fields))
	guidance := make([]FieldGuidance, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, f.Label)
		guidance = append(guidance, FieldGuidance{
			Label: f.Label,
			Tip:   fieldTip(f.Label),
		})
	}

	step := Step{
		ID:             1,
		Title:          categoryFillable,
		Required:       true,
		Risk:           RiskMedium,
		RiskReason:     "Fillable forms are submitted as-is; controls left empty go through empty.",
		RemediationTip: "Open the form in a PDF viewer and complete every listed control.",
		WhatToDo:       "Fill: " + strings.Join(labels, ", "),
		Fields:         guidance,
		Companion: defaultStepReason + " " +
			companionGoodAnswer + " " + companionSkipDefault,
	}

	return buildPlan(overviewFallback, []Step{step})
}

func buildPlan(overview string, steps []Step) *ActionPlan {
	mandatory := 0
	for _, s := range steps {
		if s.Required {
			mandatory++
		}
	}
	if steps == nil {
		steps = []Step{}
	}
	return &ActionPlan{
		Overview:   overview,
		TotalSteps: len(steps),
		Mandatory:  mandatory,
		Optional:   len(steps) - mandatory,
		Steps:      steps,
	}
}

// inferOverview names the document. The first non-blank line is preferred;
// failing that the first ten lines are scanned for the same keyword
// families.
func inferOverview(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == 10 {
			break
		}
	}
	if len(lines) == 0 {
		return overviewFallback
	}

	if title, ok := overviewTitle(lines[0]); ok {
		return title
	}
	for _, line := range lines {
		if title, ok := overviewTitle(line); ok {
			return title
		}
	}
	return overviewFallback
}

func overviewTitle(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, rule := range overviewRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.title, true
			}
		}
	}
	return "", false
}

const (
	companionGoodAnswer  = "Provide complete, accurate details matching your official documents."
	companionSkipDefault = "Skipping this may delay or jeopardize your application."
	companionSkipReject  = "Skipping this may cause rejection or requests for resubmission."
	companionSkipID      = "Incorrect identity details often lead to outright rejection."
)

// companionFor composes the step's companion explanation: why the step
// exists, what a good answer looks like, and what happens if it is skipped.
// The skip wording escalates for the categories where omissions are fatal.
func companionFor(category Category) string {
	why, ok := stepReasons[category]
	if !ok {
		why = defaultStepReason
	}

	skipped := companionSkipDefault
	switch category {
	case CategoryVerification, CategoryDeclarations:
		skipped = companionSkipReject
	case CategoryIdentity:
		skipped = companionSkipID
	}

	return why + " " + companionGoodAnswer + " " + skipped
}
