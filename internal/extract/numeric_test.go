package extract

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"1,234.56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"1,56", 1.56, true},
		{"€ 1 234", 1234, true},
		{"$1,234,567.89", 1234567.89, true},
		{"1.234.567,89", 1234567.89, true},
		{"25.99", 25.99, true},
		{"1,234,567", 1234567, true},
		{"-42,50", -42.5, true},
		{"  $ 99  ", 99, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12a.50", 0, false},
		{"$", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q): ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ParseAmount(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseAmountLocaleConventions(t *testing.T) {
	// US and European renderings of the same number must agree.
	us, ok := ParseAmount("1,234.56")
	if !ok {
		t.Fatal("US style did not parse")
	}
	eu, ok := ParseAmount("1.234,56")
	if !ok {
		t.Fatal("European style did not parse")
	}
	if us != eu {
		t.Errorf("US %v != European %v", us, eu)
	}
}
