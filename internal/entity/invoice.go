package entity

// UnknownValue marks a required summary field the analysis did not yield.
const UnknownValue = "N/A"

// TermsNotAvailable is the terminal payment-terms value when both the
// structured field and the raw-text fallback came up empty.
const TermsNotAvailable = "Not available"

// LineItemKind tags the shape of a normalized line item. Classification
// precedence is hours > fractional quantity > integer quantity > minimal,
// decided once at creation time.
type LineItemKind string

const (
	LineItemTimeBilled     LineItemKind = "TIME_BILLED"
	LineItemQuantityPriced LineItemKind = "QUANTITY_PRICED"
	LineItemMinimal        LineItemKind = "MINIMAL"
)

// NormalizedLineItem is one classified invoice line. Amount keeps the raw
// detected string for display fidelity; it is not numerically validated on
// the structured path. Pointer fields are nil exactly when the source
// carried no value, so a renderer can tell "unknown" from "not applicable":
// only the pair matching Kind is ever set.
type NormalizedLineItem struct {
	Kind        LineItemKind
	Description string
	Amount      *string

	Quantity  *string
	UnitPrice *string

	Hours *string
	Rate  *string
}

// InvoiceRecord is the final output unit for one logical invoice.
// PaymentTerms is nil until the recovery decision ran; afterwards it holds
// either the structured value, the recovered raw-text span, or
// TermsNotAvailable. Never mutated after that step.
type InvoiceRecord struct {
	InvoiceNumber string
	InvoiceDate   string
	InvoiceTotal  string
	PaymentTerms  *string
	LineItems     []NormalizedLineItem
}
