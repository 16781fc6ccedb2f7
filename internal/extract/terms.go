package extract

import "strings"

// paymentTermsKeywords is the vocabulary scanned for in raw document text
// when the structured PAYMENT_TERMS field is missing. Matching is substring
// based on lowercased lines; no tokenization.
var paymentTermsKeywords = []string{
	"terms of payment",
	"payment is due",
	"late payment",
	"immediate payment",
	"payment terms",
	"please pay",
	"terms:",
	"balance due",
	"unpaid for",
	"penalty",
	"interest",
	"please remit",
	"net 15",
	"net 30",
	"net 60",
	"net 90",
	"due upon receipt",
}

// FindPaymentTerms scans an ordered sequence of detected text lines and
// returns every line that mentions payment-terms vocabulary, space-joined in
// original order. Returns nil when no line matches.
func FindPaymentTerms(lines []string) *string {
	var found []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range paymentTermsKeywords {
			if strings.Contains(lower, kw) {
				found = append(found, line)
				break
			}
		}
	}
	if len(found) == 0 {
		return nil
	}
	joined := strings.Join(found, " ")
	return &joined
}
