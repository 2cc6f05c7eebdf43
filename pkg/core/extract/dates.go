package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cse_insight/pkg/core/pdftext"
)

// quarterEnds are the only valid period-end day/month pairs for a quarterly
// statement.
var quarterEnds = [][2]int{{3, 31}, {6, 30}, {9, 30}, {12, 31}}

// IsQuarterEnd reports whether t falls on a quarter-end date.
func IsQuarterEnd(t time.Time) bool {
	for _, qe := range quarterEnds {
		if int(t.Month()) == qe[0] && t.Day() == qe[1] {
			return true
		}
	}
	return false
}

var filenameDatePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(\d{2})[-_]([A-Za-z]{3})[-_](\d{4})`), "02-Jan-2006"},
	{regexp.MustCompile(`(\d{2})([A-Za-z]{3})(\d{4})`), "02-Jan-2006"},
	{regexp.MustCompile(`(\d{4})[-_](\d{2})[-_](\d{2})`), "2006-01-02"},
	{regexp.MustCompile(`(\d{2})[-_](\d{2})[-_](\d{4})`), "02-01-2006"},
}

// ParseFilenameDate recovers the filing date embedded in a scraped PDF's
// filename. Several separator and ordering conventions appear in the
// dataset; day-first is assumed for all-numeric forms.
func ParseFilenameDate(filename string) (time.Time, bool) {
	for _, p := range filenameDatePatterns {
		m := p.re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		t, err := time.Parse(p.layout, strings.Join(m[1:], "-"))
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

var inDocDateRe = regexp.MustCompile(
	`(?i)(\d{1,2})(?:st|nd|rd|th)?[\s/-]+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s/-]+(\d{4})`)

var monthsByAbbr = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// FindTableDate resolves the statement's period-end date. It scans the first
// two pages for day-month-year phrases and keeps those landing on a
// quarter-end, preferring the latest since statements cite both the current
// and comparative period ends. When no in-document date is found it falls
// back to the latest quarter-end on or before the filename-derived report
// date in that calendar year. Both sources failing is non-fatal: the zero
// time is returned and the record proceeds undated.
func FindTableDate(doc *pdftext.Document, reportDate time.Time) (time.Time, bool) {
	var best time.Time
	pages := doc.Pages
	if len(pages) > 2 {
		pages = pages[:2]
	}
	for _, page := range pages {
		for _, m := range inDocDateRe.FindAllStringSubmatch(page.Text(), -1) {
			month, ok := monthsByAbbr[strings.ToLower(m[2][:3])]
			if !ok {
				continue
			}
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			// Reject impossible dates the regex let through (e.g. "31 Jun").
			if d.Day() != day || !IsQuarterEnd(d) {
				continue
			}
			if d.After(best) {
				best = d
			}
		}
	}
	if !best.IsZero() {
		return best, true
	}

	if !reportDate.IsZero() {
		var latest time.Time
		for _, qe := range quarterEnds {
			d := time.Date(reportDate.Year(), time.Month(qe[0]), qe[1], 0, 0, 0, 0, time.UTC)
			if !d.After(reportDate) && d.After(latest) {
				latest = d
			}
		}
		if !latest.IsZero() {
			return latest, true
		}
	}
	return time.Time{}, false
}
