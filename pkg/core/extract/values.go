package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numericRe = regexp.MustCompile(`-?\d+\.?\d*`)
	// tokenRe matches a thousands-grouped figure, optionally parenthesised.
	tokenRe = regexp.MustCompile(`\(?\d{1,3}(?:,\d{3})*(?:\.\d+)?\)?`)
	// yLabelRe matches unit annotations like "Rs.'000" or "Rs 000" near a
	// statement heading.
	yLabelRe = regexp.MustCompile(`(?i)rs\.?[' ]?0{3,}`)
)

// ParseValue converts a raw table cell into a signed float. Thousands
// separators and whitespace are stripped, and an accounting-style
// parenthesised figure is read as negative. Returns 0.0 when the cell holds
// no numeric substring; callers treat 0.0 as absent, never as a reported
// zero.
func ParseValue(cell string) float64 {
	s := strings.NewReplacer(",", "", " ", "", "\n", "").Replace(cell)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 2 {
		s = "-" + s[1:len(s)-1]
	}
	m := numericRe.FindString(s)
	if m == "" {
		return 0.0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// NumericTokens returns the thousands-grouped figures on a line, in order.
// Used by the line-scan strategy where a row's columns exist only as spacing.
func NumericTokens(line string) []string {
	return tokenRe.FindAllString(line, -1)
}

// FindYLabel scans the lines around a statement heading for a currency/unit
// annotation and returns the first one found, or "".
func FindYLabel(lines []string) string {
	for _, line := range lines {
		if m := yLabelRe.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
