package analysis

import "testing"

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		answer  string
		valid   bool
		message string
	}{
		{"empty answer", "Full Name", "", false, "This field cannot be left empty."},
		{"whitespace-only answer", "Full Name", "   ", false, "This field cannot be left empty."},
		{"short mobile number", "Mobile Number", "98765432", false, "Enter a valid 10-digit mobile number."},
		{"valid mobile number", "Mobile Number", "9876543210", true, "Looks good."},
		{"phone label triggers same rule", "Phone", "12345", false, "Enter a valid 10-digit mobile number."},
		{"invalid email", "Email Address", "not-an-email", false, "Enter a valid email address."},
		{"valid email", "Email Address", "a@b.co", true, "Looks good."},
		{"wrong date format", "Date of Birth", "1998-04-21", false, "Use date format DD/MM/YYYY."},
		{"valid date", "Date of Birth", "21/04/1998", true, "Looks good."},
		{"percentage out of range", "Percentage", "105", false, "Enter a valid percentage between 0 and 100."},
		{"percentage not a number", "Percentage", "abc", false, "Enter a valid percentage between 0 and 100."},
		{"valid percentage", "Percentage of Marks", "78.5", true, "Looks good."},
		{"invalid year", "Year of Passing", "20", false, "Enter a valid 4-digit year."},
		{"valid year", "Year of Passing", "2026", true, "Looks good."},
		{"short aadhaar", "Aadhaar Number", "1234", false, "Aadhaar number must be 12 digits."},
		{"aadhaar with spaces", "Aadhaar Number", "1234 5678 9012", true, "Looks good."},
		{"malformed pan", "PAN Number", "1234567890", false, "PAN must be in format ABCDE1234F."},
		{"lowercase pan accepted", "PAN Number", "abcde1234f", true, "Looks good."},
		{"malformed passport", "Passport Number", "12345678", false, "Enter a valid passport number."},
		{"lowercase passport accepted", "Passport Number", "m1234567", true, "Looks good."},
		{"unmatched label too short", "Remarks", "x", false, "Input seems too short."},
		{"unmatched label passes", "Remarks", "none", true, "Looks good."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateAnswer(tt.label, tt.answer)
			if result.Valid != tt.valid {
				t.Errorf("ValidateAnswer(%q, %q).Valid = %v, want %v",
					tt.label, tt.answer, result.Valid, tt.valid)
			}
			if result.Message != tt.message {
				t.Errorf("ValidateAnswer(%q, %q).Message = %q, want %q",
					tt.label, tt.answer, result.Message, tt.message)
			}
		})
	}
}

func TestValidateAnswerFirstFailureWins(t *testing.T) {
	// "Date of Birth / Mobile" would trigger both rules; "date" comes after
	// the phone check, so the phone failure is reported first.
	result := ValidateAnswer("Mobile / DOB", "hello")
	if result.Valid {
		t.Fatal("Expected failure for an answer matching neither rule")
	}
	if result.Message != "Enter a valid 10-digit mobile number." {
		t.Errorf("Expected the phone rule to fail first, got %q", result.Message)
	}
}

func TestValidateAnswerMatchedRuleSkipsLengthCheck(t *testing.T) {
	// A single digit is far too short generically, but the year rule already
	// reported the structural failure.
	result := ValidateAnswer("Year", "2")
	if result.Message != "Enter a valid 4-digit year." {
		t.Errorf("Expected the year rule message, got %q", result.Message)
	}
}
