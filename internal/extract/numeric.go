package extract

import (
	"strconv"
	"strings"
)

// currencyReplacer strips the symbols and spacing that wrap amounts on real
// invoices before separator analysis.
var currencyReplacer = strings.NewReplacer("€", "", "$", "", " ", "", " ", "")

// ParseAmount parses a US- or European-formatted amount string into a float.
// It strips currency symbols and spaces, then disambiguates comma and period
// by their relative positions:
//
//	"1,234.56" -> 1234.56  (comma is thousands)
//	"1.234,56" -> 1234.56  (period is thousands, comma is decimal)
//	"1,56"     -> 1.56     (lone comma is decimal)
//	"€ 1 234"  -> 1234
//
// The second return is false when the string cannot be read as a number;
// malformed input never panics past this boundary.
func ParseAmount(s string) (float64, bool) {
	cleaned := strings.TrimSpace(currencyReplacer.Replace(s))
	if cleaned == "" {
		return 0, false
	}

	commas := strings.Count(cleaned, ",")
	periods := strings.Count(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	lastPeriod := strings.LastIndex(cleaned, ".")

	switch {
	case periods > 0 && commas == 1 && lastPeriod < lastComma:
		// European style: periods group thousands, comma is the decimal.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case commas > 0 && periods > 0 && lastComma < lastPeriod:
		// US style: commas group thousands.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case commas > 1 && periods == 0:
		// Several commas with no period can only be thousands grouping.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case commas == 1 && periods == 0:
		// A lone comma reads as a decimal separator.
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
