package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	phoneRE    = regexp.MustCompile(`^\d{10}$`)
	emailRE    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	dateRE     = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	yearRE     = regexp.MustCompile(`^\d{4}$`)
	aadhaarRE  = regexp.MustCompile(`^\d{12}$`)
	panRE      = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	passportRE = regexp.MustCompile(`^[A-Z]\d{7}$`)
)

// answerRule is one structural check keyed on label keywords. Rules run in
// the declared order and the first failing rule wins.
type answerRule struct {
	keywords []string
	check    func(answer string) (bool, string)
}

var answerRules = []answerRule{
	{[]string{"mobile", "phone"}, func(answer string) (bool, string) {
		if !phoneRE.MatchString(answer) {
			return false, "Enter a valid 10-digit mobile number."
		}
		return true, ""
	}},
	{[]string{"email"}, func(answer string) (bool, string) {
		if !emailRE.MatchString(answer) {
			return false, "Enter a valid email address."
		}
		return true, ""
	}},
	{[]string{"date", "dob"}, func(answer string) (bool, string) {
		if !dateRE.MatchString(answer) {
			return false, "Use date format DD/MM/YYYY."
		}
		return true, ""
	}},
	{[]string{"percentage", "percent"}, func(answer string) (bool, string) {
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil || value < 0 || value > 100 {
			return false, "Enter a valid percentage between 0 and 100."
		}
		return true, ""
	}},
	{[]string{"year"}, func(answer string) (bool, string) {
		if !yearRE.MatchString(answer) {
			return false, "Enter a valid 4-digit year."
		}
		return true, ""
	}},
	{[]string{"aadhaar"}, func(answer string) (bool, string) {
		if !aadhaarRE.MatchString(strings.ReplaceAll(answer, " ", "")) {
			return false, "Aadhaar number must be 12 digits."
		}
		return true, ""
	}},
	{[]string{"pan"}, func(answer string) (bool, string) {
		if !panRE.MatchString(strings.ToUpper(answer)) {
			return false, "PAN must be in format ABCDE1234F."
		}
		return true, ""
	}},
	{[]string{"passport"}, func(answer string) (bool, string) {
		if !passportRE.MatchString(strings.ToUpper(answer)) {
			return false, "Enter a valid passport number."
		}
		return true, ""
	}},
}

// ValidateAnswer checks one submitted answer against the structural rules
// its field label triggers. Stateless, format checks only. Multiple rules
// may apply to one label; the first failure short-circuits.
func ValidateAnswer(fieldLabel, answer string) Validation {
	lower := strings.ToLower(fieldLabel)
	answer = strings.TrimSpace(answer)

	if answer == "" {
		return Validation{Valid: false, Message: "This field cannot be left empty."}
	}

	matched := false
	for _, rule := range answerRules {
		applies := false
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				applies = true
				break
			}
		}
		if !applies {
			continue
		}
		matched = true
		if ok, message := rule.check(answer); !ok {
			return Validation{Valid: false, Message: message}
		}
	}

	if !matched && len(answer) < 2 {
		return Validation{Valid: false, Message: "Input seems too short."}
	}

	return Validation{Valid: true, Message: "Looks good."}
}
