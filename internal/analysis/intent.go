package analysis

import "strings"

// intentRule maps a category to its membership keywords. Rules are evaluated
// in slice order and the first keyword hit wins, so a label matching several
// families resolves to the earliest category. "date of birth" and "dob" sit
// under Identity, which is why a label naming both a person and a date still
// classifies as identity data.
type intentRule struct {
	category Category
	keywords []string
}

var intentRules = []intentRule{
	{CategoryIdentity, []string{
		"name", "father", "mother", "gender", "dob", "date of birth",
	}},
	{CategoryContact, []string{
		"mobile", "phone", "email",
	}},
	{CategoryAddress, []string{
		"address", "pin", "district", "state", "country",
	}},
	{CategoryAcademic, []string{
		"class", "school", "college", "roll", "jee",
		"exam", "board", "percentage", "year",
	}},
	{CategoryVerification, []string{
		"aadhaar", "pan", "passport", "id", "certificate",
	}},
	{CategoryPreferences, []string{
		"course", "branch", "category", "quota", "center",
	}},
	{CategoryDeclarations, []string{
		"declaration", "signature", "undertaking",
	}},
}

// ClassifyField maps a field label to its semantic category. Total: every
// string, including the empty string, yields a category.
func ClassifyField(label string) Category {
	lower := strings.ToLower(label)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
