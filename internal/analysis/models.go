// Package analysis turns raw document text into a structured, ranked list of
// action steps: heuristic field detection, intent classification,
// requiredness/risk policy, step synthesis, applicability tagging, and
// per-field answer validation.
package analysis

// Category is one of the fixed semantic groupings a field label is
// classified into.
type Category string

const (
	CategoryIdentity     Category = "Identity Information"
	CategoryContact      Category = "Contact Information"
	CategoryAddress      Category = "Address Information"
	CategoryAcademic     Category = "Academic / Professional Information"
	CategoryVerification Category = "Verification Documents"
	CategoryPreferences  Category = "Preferences / Choices"
	CategoryDeclarations Category = "Declarations"
	CategoryOther        Category = "Other Information"

	// categoryFillable titles the single step emitted for documents whose
	// fields come from native form metadata rather than text heuristics.
	categoryFillable Category = "Fillable Form Fields"
)

// RiskLevel rates how costly a mistake in a step tends to be.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Applicability refines a step's relevance given user-supplied context. It
// is distinct from the baseline required/optional policy.
type Applicability string

const (
	ApplicabilityRequired      Applicability = "required"
	ApplicabilityConditional   Applicability = "conditional"
	ApplicabilityNotApplicable Applicability = "not_applicable"
)

// Context carries optional answers to the applicability questionnaire.
// Nil pointers mean "unknown", never false or empty.
type Context struct {
	ApplicantType *string `json:"applicant_type,omitempty"`
	FirstTime     *bool   `json:"first_time,omitempty"`
	Country       *string `json:"country,omitempty"`
}

func (c *Context) applicantType() string {
	if c == nil || c.ApplicantType == nil {
		return ""
	}
	return *c.ApplicantType
}

// FieldGuidance is per-field help attached to a step.
type FieldGuidance struct {
	Label           string `json:"label"`
	Tip             string `json:"tip"`
	SuggestedAnswer string `json:"suggested_answer"`
}

// Step is one category's worth of fields bundled with policy and guidance.
type Step struct {
	ID             int             `json:"id"`
	Title          Category        `json:"title"`
	Required       bool            `json:"required"`
	Risk           RiskLevel       `json:"risk"`
	RiskReason     string          `json:"risk_reason"`
	RemediationTip string          `json:"remediation_tip"`
	WhatToDo       string          `json:"what_to_do"`
	Fields         []FieldGuidance `json:"fields"`
	Companion      string          `json:"companion"`
	Applicability  Applicability   `json:"applicability,omitempty"`
}

// ActionPlan is the synthesizer's final output. The invariant
// Mandatory + Optional == TotalSteps == len(Steps) always holds.
type ActionPlan struct {
	Overview   string `json:"overview"`
	TotalSteps int    `json:"total_steps"`
	Mandatory  int    `json:"mandatory"`
	Optional   int    `json:"optional"`
	Steps      []Step `json:"steps"`
}

// Validation is the outcome of checking one submitted answer.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
