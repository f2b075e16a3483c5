package analysis

import "strings"

// riskProfile bundles a category's risk rating with the reason it matters
// and how to avoid the mistake.
type riskProfile struct {
	risk   RiskLevel
	reason string
	tip    string
}

var riskProfiles = map[Category]riskProfile{
	CategoryIdentity: {
		RiskHigh,
		"Identity details that mismatch official ID records commonly lead to rejection.",
		"Copy names and dates letter-for-letter from your government-issued ID.",
	},
	CategoryContact: {
		RiskMedium,
		"A wrong phone number or email means missed updates and failed verifications.",
		"Read the digits back and send yourself a test email before submitting.",
	},
	CategoryAddress: {
		RiskMedium,
		"An address that cannot be verified stalls processing.",
		"Match the address on your proof-of-address document exactly.",
	},
	CategoryAcademic: {
		RiskMedium,
		"Figures that disagree with your academic records trigger re-checks.",
		"Copy marks, years, and board names straight from the marksheet.",
	},
	CategoryVerification: {
		RiskHigh,
		"Invalid identity document numbers cause outright rejection.",
		"Re-check each identifier against the physical document before submitting.",
	},
	CategoryPreferences: {
		RiskLow,
		"Wrong selections are inconvenient but rarely block the application.",
		"Review each option once more before locking your choices.",
	},
	CategoryDeclarations: {
		RiskHigh,
		"Unsigned or false declarations void the whole application.",
		"Read the statement fully, then sign and date it as asked.",
	},
	CategoryOther: {
		RiskLow,
		"Miscellaneous fields rarely block an application on their own.",
		"Fill these after the critical sections are complete.",
	},
}

// unconditionallyRequired categories are required regardless of context.
var unconditionallyRequired = map[Category]bool{
	CategoryIdentity:     true,
	CategoryVerification: true,
	CategoryDeclarations: true,
}

// DetermineRequired derives a category's required flag. Academic data is
// required only for student applicants; everything outside the
// unconditionally-required set defaults to optional.
func DetermineRequired(category Category, ctx *Context) bool {
	if unconditionallyRequired[category] {
		return true
	}
	if category == CategoryAcademic &&
		strings.EqualFold(ctx.applicantType(), "student") {
		return true
	}
	return false
}

// RiskForCategory returns the category's risk rating, the reason behind it,
// and a remediation tip.
func RiskForCategory(category Category) (RiskLevel, string, string) {
	profile, ok := riskProfiles[category]
	if !ok {
		profile = riskProfiles[CategoryOther]
	}
	return profile.risk, profile.reason, profile.tip
}
