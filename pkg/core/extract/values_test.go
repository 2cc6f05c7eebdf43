package extract

import (
	"reflect"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want float64
	}{
		{"plain integer", "1234", 1234},
		{"thousands separators", "1,234,567", 1234567},
		{"decimal", "1,234.56", 1234.56},
		{"parenthesised negative", "(1,234.56)", -1234.56},
		{"explicit negative", "-500", -500},
		{"embedded whitespace", " 2 500 ", 2500},
		{"newline inside cell", "1,2\n34", 1234},
		{"no numeric content", "n/a", 0},
		{"empty cell", "", 0},
		{"bare parens", "()", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseValue(tt.cell); got != tt.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestNumericTokens(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			"dipd statement row",
			"Revenue 10,387,699 8,131,563 10,387,699",
			[]string{"10,387,699", "8,131,563", "10,387,699"},
		},
		{
			"parenthesised figures kept",
			"Cost of Sales (8,565,363) (6,661,592) (8,565,363)",
			[]string{"(8,565,363)", "(6,661,592)", "(8,565,363)"},
		},
		{
			"label only",
			"GROUP Unaudited",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericTokens(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NumericTokens(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFindYLabel(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"canonical form", []string{"for the three months ended", "Rs.'000"}, "Rs.'000"},
		{"no apostrophe", []string{"In Rs 000"}, "Rs 000"},
		{"absent", []string{"income statement", "unaudited"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindYLabel(tt.lines); got != tt.want {
				t.Errorf("FindYLabel(%v) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}
