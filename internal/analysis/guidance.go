package analysis

import "strings"

const genericFieldTip = "Fill as requested on the form."

// tipRule pairs label keywords with the tip shown for matching fields.
// Rules are checked in order; the first match wins, so the more specific
// entries sit above the generic ones ("date of birth" before "date").
type tipRule struct {
	keywords []string
	all      bool // when true, every keyword must appear in the label
	text     string
}

var fieldTipRules = []tipRule{
	{keywords: []string{"date of birth", "dob"}, text: "Use the same date format the form shows (example: 1998-04-21)."},
	{keywords: []string{"date"}, text: "Follow the form's date format (avoid ambiguous 01/02/03)."},
	{keywords: []string{"email"}, text: "Use a working email and check for typos."},
	{keywords: []string{"mobile", "phone"}, text: "Include country code if the form asks (example: +91 9876543210)."},
	{keywords: []string{"address"}, text: "Include house/flat, street, city, state, and postal code."},
	{keywords: []string{"pan"}, text: "PAN format is ABCDE1234F (10 characters)."},
	{keywords: []string{"aadhaar"}, text: "Enter 12 digits; don't add spaces unless the form shows them."},
	{keywords: []string{"passport"}, text: "Enter passport number without spaces (example: A1234567)."},
	{keywords: []string{"ifsc"}, text: "IFSC is 11 characters (example: HDFC0000123)."},
	{keywords: []string{"account", "number"}, all: true, text: "Enter digits exactly; do not mask any digits."},
	{keywords: []string{"income", "salary"}, text: "Use numbers only (no '/-', no words)."},
	{keywords: []string{"marks", "percentage"}, text: "Enter the exact number requested (percent vs CGPA)."},
	{keywords: []string{"document"}, text: "Upload a clear file; ensure it meets size/type rules."},
}

// fieldTip returns the filling tip for one detected field label.
func fieldTip(label string) string {
	lower := strings.ToLower(label)
	for _, rule := range fieldTipRules {
		if matchRule(lower, rule.keywords, rule.all) {
			return rule.text
		}
	}
	return genericFieldTip
}

func matchRule(lower string, keywords []string, all bool) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			if !all {
				return true
			}
		} else if all {
			return false
		}
	}
	return all
}

// narrativeKeywords mark fields whose answer is free text the user must
// author, so a templated draft beats a format example.
var narrativeKeywords = []string{"reason", "purpose", "declaration", "undertaking", "statement"}

// SuggestAnswer produces an example-formatted placeholder answer for a field
// label, or a short templated draft for narrative fields.
func SuggestAnswer(label string) string {
	lower := strings.ToLower(label)

	for _, kw := range narrativeKeywords {
		if strings.Contains(lower, kw) {
			return DraftForField(label)
		}
	}

	has := func(kws ...string) bool { return matchRule(lower, kws, true) }

	switch {
	case has("father", "name"):
		return "Enter your father's full name as per official records."
	case has("mother", "name"):
		return "Enter your mother's full name as per official records."
	case strings.Contains(lower, "full name"),
		strings.Contains(lower, "name") && !strings.Contains(lower, "father") && !strings.Contains(lower, "mother") &&
			!strings.Contains(lower, "nominee") && !strings.Contains(lower, "guardian") &&
			!strings.Contains(lower, "spouse") && !strings.Contains(lower, "employer") &&
			!strings.Contains(lower, "bank"):
		return "Enter your full legal name exactly as on your ID/passport."
	case strings.Contains(lower, "date of birth"), strings.Contains(lower, "dob"):
		return "Use YYYY-MM-DD (example: 1998-04-21) as shown on your birth certificate/ID."
	case strings.Contains(lower, "date"):
		return "Use YYYY-MM-DD (example: 2026-01-29) unless the form shows a different format."
	case strings.Contains(lower, "email"):
		return "Use a working email (example: name@example.com) you check regularly."
	case strings.Contains(lower, "mobile"), strings.Contains(lower, "phone"):
		return "Include country code (example: +91 9876543210) and use digits only."
	case strings.Contains(lower, "address"):
		return "Write: House/Flat, Street, Area, City, State, Postal Code, Country."
	case strings.Contains(lower, "passport"):
		return "Enter your passport number without spaces (example: A1234567)."
	case strings.Contains(lower, "pan"):
		return "Enter your PAN in ABCDE1234F format (10 characters)."
	case strings.Contains(lower, "aadhaar"):
		return "Enter your 12-digit Aadhaar number (example: 123456789012)."
	case strings.Contains(lower, "ifsc"):
		return "Enter your bank's IFSC (11 characters, example: HDFC0000123)."
	case has("account", "number"):
		return "Enter your bank account number exactly as shown in your passbook."
	case strings.Contains(lower, "income"), strings.Contains(lower, "salary"):
		return "Enter the amount in numbers only (example: 350000)."
	case strings.Contains(lower, "year"):
		return "Enter the 4-digit year (example: 2026)."
	case strings.Contains(lower, "percentage"), strings.Contains(lower, "percent"):
		return "Enter the percentage as a number (example: 78.5)."
	case has("nominee", "name"):
		return "Enter the full name of the person you wish to nominate."
	case strings.Contains(lower, "nominee"):
		return "Enter the nominee's details as requested on the form."
	case has("guardian", "name"):
		return "Enter your guardian's full name as per official records."
	case has("spouse", "name"):
		return "Enter your spouse's full name as per official records."
	case strings.Contains(lower, "relation"):
		return "Specify the relationship (example: Father, Mother, Spouse, Guardian)."
	case strings.Contains(lower, "occupation"):
		return "Enter your occupation (example: Engineer, Teacher, Business)."
	case has("employer", "name"):
		return "Enter your employer's full name as per official records."
	case strings.Contains(lower, "branch"):
		return "Enter your bank branch name (example: MG Road, Bengaluru)."
	case has("bank", "name"):
		return "Enter your bank's full name (example: State Bank of India)."
	case strings.Contains(lower, "city"):
		return "Enter the city name (example: Bengaluru)."
	case strings.Contains(lower, "state"):
		return "Enter the state name (example: Karnataka)."
	case strings.Contains(lower, "country"):
		return "Enter the country name (example: India)."
	case strings.Contains(lower, "pin"), strings.Contains(lower, "postal"), strings.Contains(lower, "zip"):
		return "Enter the postal/ZIP code (example: 560001)."
	case strings.Contains(lower, "nationality"):
		return "Enter your nationality (example: Indian)."
	case strings.Contains(lower, "gender"):
		return "Select your gender as per your official ID (Male/Female/Other)."
	case strings.Contains(lower, "marital"):
		return "Select your marital status (Single/Married/Divorced/Widowed)."
	}

	return genericFieldTip
}

// DraftForField writes a short templated draft sentence for narrative
// fields. The user is expected to edit it before submitting.
func DraftForField(label string) string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "reason"), strings.Contains(lower, "purpose"):
		return "I am applying because [concise reason: 1-2 sentences]."
	case strings.Contains(lower, "declaration"), strings.Contains(lower, "undertaking"):
		return "I hereby declare that the information provided is true to the best of my knowledge."
	case strings.Contains(lower, "statement"):
		return "I confirm the statements above are accurate and complete."
	}
	return "Draft text - please review and edit before submitting."
}
