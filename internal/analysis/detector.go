package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// Label length bounds after trimming. Candidates outside are discarded.
const (
	minLabelLen = 2
	maxLabelLen = 60
)

// Line length caps per candidate rule. Longer lines are prose or merged
// OCR noise, not labels.
const (
	maxColonLineLen    = 60
	maxBlankRunLineLen = 140
	maxKeywordLineLen  = 120
	minValueLineDigits = 4
)

// detectKeywords are label words that mark a line as naming a form field.
var detectKeywords = []string{
	"name", "date of birth", "dob", "pan", "aadhaar",
	"income", "occupation", "address", "branch",
	"signature", "account", "phone", "mobile", "email",
	"passport", "ifsc", "percentage", "year", "exam",
	"college", "school",
}

// ignorePhrases mark whole lines as boilerplate, never field labels.
var ignorePhrases = []string{
	"account opening form",
	"photograph",
	"as per census",
	"facility from any other bank",
}

var (
	// label text immediately preceding an underscore run, e.g. "Name _____".
	blankRunLabelRE = regexp.MustCompile(`([A-Za-z0-9][A-Za-z0-9 ,.'/()&-]{0,49}?)\s*_{2,}`)

	nonLabelCharsRE = regexp.MustCompile(`[^A-Za-z0-9 /]`)
	digitRunRE      = regexp.MustCompile(`\d{3,}`)
	currencyDigitRE = regexp.MustCompile(`(?:₹|\$|Rs\.?|INR)\s*\d|\d\s*(?:₹|/-)`)
)

// DetectFields scans normalized text line by line and returns the maximal,
// non-redundant set of field label candidates, sorted lexicographically.
func DetectFields(text string) []string {
	seen := map[string]bool{}
	var candidates []string

	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) < minLabelLen || len(candidate) > maxLabelLen {
			return
		}
		if !seen[candidate] {
			seen[candidate] = true
			candidates = append(candidates, candidate)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if matchesIgnorePhrase(lower) {
			continue
		}

		// Rule 1: colon-terminated label lines.
		if strings.HasSuffix(line, ":") && len(line) < maxColonLineLen {
			add(strings.TrimRight(line, ":"))
		}

		// Rule 2: fill-in-the-blank patterns, "Label ______".
		if strings.Contains(line, "__") && len(line) < maxBlankRunLineLen {
			for _, m := range blankRunLabelRE.FindAllStringSubmatch(line, -1) {
				add(m[1])
			}
		}

		// Rule 3: keyword-bearing label lines, excluding value lines.
		// Blank-run lines are left to rule 2: stripping their underscores
		// here would merge several labels into one candidate.
		if len(line) < maxKeywordLineLen && !strings.Contains(line, "__") && !isValueLine(line) {
			for _, kw := range detectKeywords {
				if strings.Contains(lower, kw) {
					add(nonLabelCharsRE.ReplaceAllString(line, ""))
					break
				}
			}
		}
	}

	return normalizeLabels(candidates)
}

func matchesIgnorePhrase(lower string) bool {
	for _, phrase := range ignorePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// isValueLine reports whether a line looks like data rather than a label.
// OCR often merges a label with its filled-in value; such lines must not
// become pseudo-labels.
func isValueLine(line string) bool {
	if digitRunRE.MatchString(line) &&
		!strings.Contains(line, "_") &&
		!strings.HasSuffix(line, ":") {
		return true
	}

	if currencyDigitRE.MatchString(line) {
		return true
	}

	digits, letters := 0, 0
	for _, r := range line {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		}
	}
	return digits >= minValueLineDigits && digits > letters
}

// normalizeLabels removes duplicates and labels subsumed by a longer one.
// A candidate survives only if it is not a case-insensitive substring of an
// already-kept label, so no surviving label contains another.
func normalizeLabels(candidates []string) []string {
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	var kept []string
	for _, candidate := range sorted {
		lower := strings.ToLower(candidate)
		subsumed := false
		for _, existing := range kept {
			if strings.Contains(strings.ToLower(existing), lower) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, candidate)
		}
	}

	sort.Strings(kept)
	return kept
}
