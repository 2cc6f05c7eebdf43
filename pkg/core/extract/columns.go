package extract

import (
	"regexp"
	"strconv"
)

var (
	yearRe        = regexp.MustCompile(`\d{4}`)
	quarterEndRe  = regexp.MustCompile(`(?i)3 months ended.*?(\d{4})`)
	bareYearSubRe = regexp.MustCompile(`(\d{4})`)
)

// SelectValueColumn picks the header row and the column holding the current
// quarter's figures out of a raw grid.
//
// The header is the last of the first three rows containing a 4-digit year
// (statements often stack a period-label row above a date row). Within it,
// a "3 months ended <year>" cell with the highest year wins; failing that,
// the cell with the highest bare year; failing that, column 1, the first
// data column after the labels.
func SelectValueColumn(grid Grid) (headerRow, valueCol int) {
	headerRow = 0
	limit := len(grid)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		for _, cell := range grid[i] {
			if yearRe.MatchString(cell) {
				headerRow = i
				break
			}
		}
	}

	if headerRow >= len(grid) {
		return 0, 1
	}
	header := grid[headerRow]

	valueCol = -1
	bestYear := -1
	for idx, cell := range header {
		if m := quarterEndRe.FindStringSubmatch(cell); m != nil {
			if year := atoiSafe(m[1]); year > bestYear {
				bestYear = year
				valueCol = idx
			}
		}
	}
	if valueCol < 0 {
		for idx, cell := range header {
			if m := bareYearSubRe.FindStringSubmatch(cell); m != nil {
				if year := atoiSafe(m[1]); year > bestYear {
					bestYear = year
					valueCol = idx
				}
			}
		}
	}
	if valueCol < 0 {
		valueCol = 1
	}
	return headerRow, valueCol
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
