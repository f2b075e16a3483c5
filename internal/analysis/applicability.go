package analysis

import "strings"

// Question is one entry of the fixed context questionnaire a caller may put
// to the user before tagging applicability.
type Question struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Type     string `json:"type"`
}

var contextQuestions = []Question{
	{Key: "applicant_type", Question: "Are you a student / working professional / self-employed / other?", Type: "string"},
	{Key: "first_time", Question: "Is this your first time applying? (yes/no)", Type: "bool"},
	{Key: "country", Question: "Country of application?", Type: "string"},
}

// Questions returns the context questionnaire. The slice is a fresh copy on
// every call.
func Questions() []Question {
	out := make([]Question, len(contextQuestions))
	copy(out, contextQuestions)
	return out
}

// TagApplicability returns a new step sequence with each step's
// applicability set from the context answers. The input steps are not
// modified.
//
// Rules: already-required steps stay required; academic data is required
// only for students; preferences and miscellany are conditional; every
// other non-required step defaults to conditional. Repeat applicants
// (first_time explicitly false) get verification steps relaxed to
// conditional.
func TagApplicability(steps []Step, ctx *Context) []Step {
	applicant := strings.ToLower(ctx.applicantType())

	out := make([]Step, len(steps))
	for i, step := range steps {
		tagged := step
		tagged.Applicability = decideApplicability(step, applicant)

		if ctx != nil && ctx.FirstTime != nil && !*ctx.FirstTime &&
			step.Title == CategoryVerification {
			tagged.Applicability = ApplicabilityConditional
		}

		out[i] = tagged
	}
	return out
}

func decideApplicability(step Step, applicant string) Applicability {
	if step.Required {
		return ApplicabilityRequired
	}
	switch step.Title {
	case CategoryAcademic:
		if applicant == "student" {
			return ApplicabilityRequired
		}
		return ApplicabilityConditional
	case CategoryPreferences, CategoryOther:
		return ApplicabilityConditional
	}
	return ApplicabilityConditional
}
