package analysis

import (
	"regexp"
	"strings"
)

var (
	horizontalSpaceRE = regexp.MustCompile(`[ \t\x{00a0}]+`)

	// OCR noise: a digit trailed by a lone unit/currency letter ("350000 p")
	// or a dangling slash/dash after an amount ("500/- ").
	digitUnitRE  = regexp.MustCompile(`(\d)\s*[pP]\b`)
	digitSlashRE = regexp.MustCompile(`(\d)\s*[/\\-]\s*\b`)

	spaceBeforePunctRE = regexp.MustCompile(`\s+([,:;])`)
	spaceAfterOpenRE   = regexp.MustCompile(`([(/])[ \t]+`)
	spaceBeforeCloseRE = regexp.MustCompile(`[ \t]+([)/])`)

	blankLinesRE = regexp.MustCompile(`\n{2,}`)
)

// Clean normalizes whitespace and common OCR artifacts so field detection
// sees consistent lines. Idempotent: Clean(Clean(x)) == Clean(x).
func Clean(text string) string {
	text = horizontalSpaceRE.ReplaceAllString(text, " ")

	text = digitUnitRE.ReplaceAllString(text, "$1")
	text = digitSlashRE.ReplaceAllString(text, "$1 ")

	text = spaceBeforePunctRE.ReplaceAllString(text, "$1")
	text = spaceAfterOpenRE.ReplaceAllString(text, "$1")
	text = spaceBeforeCloseRE.ReplaceAllString(text, "$1")

	text = blankLinesRE.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
