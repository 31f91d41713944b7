package pagelens

import (
	"regexp"
	"strings"
)

// whitespaceRun matches runs of ASCII and Unicode whitespace, including
// vertical tab and the byte order mark.
var whitespaceRun = regexp.MustCompile(`[\s\x0B\p{Z}\x{FEFF}]+`)

// NormalizeText collapses every whitespace run, line breaks included, to a
// single space and trims the result.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
