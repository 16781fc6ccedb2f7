package constants

// FieldType is the canonical Textract expense type-label for a detected
// field. The vocabulary is open-ended upstream; these are the labels the
// extractor consumes directly or excludes on purpose.
type FieldType string

const (
	FieldInvoiceReceiptID   FieldType = "INVOICE_RECEIPT_ID"
	FieldInvoiceReceiptDate FieldType = "INVOICE_RECEIPT_DATE"
	FieldTotal              FieldType = "TOTAL"
	FieldPaymentTerms       FieldType = "PAYMENT_TERMS"
	FieldTerms              FieldType = "TERMS"
)

// Line-item scoped labels.
const (
	FieldItem      FieldType = "ITEM"
	FieldPrice     FieldType = "PRICE"
	FieldAmount    FieldType = "AMOUNT"
	FieldQuantity  FieldType = "QUANTITY"
	FieldUnitPrice FieldType = "UNIT_PRICE"
	FieldHours     FieldType = "HOURS"
	FieldRate      FieldType = "RATE"
)

// Header, party and address labels that must never be promoted to fallback
// line items.
const (
	FieldTax              FieldType = "TAX"
	FieldVendorName       FieldType = "VENDOR_NAME"
	FieldVendorAddress    FieldType = "VENDOR_ADDRESS"
	FieldReceiverName     FieldType = "RECEIVER_NAME"
	FieldReceiverAddress  FieldType = "RECEIVER_ADDRESS"
	FieldDueDate          FieldType = "DUE_DATE"
	FieldShippingHandling FieldType = "SHIPPING_HANDLING_CHARGE"
	FieldGratuity         FieldType = "GRATUITY"
	FieldAddress          FieldType = "ADDRESS"
	FieldStreet           FieldType = "STREET"
	FieldCity             FieldType = "CITY"
	FieldState            FieldType = "STATE"
	FieldZipCode          FieldType = "ZIP_CODE"
	FieldName             FieldType = "NAME"
	FieldAddressBlock     FieldType = "ADDRESS_BLOCK"
	FieldClientMatter     FieldType = "CLIENT_MATTER"
	FieldClientID         FieldType = "CLIENT_ID"
)

// FallbackExcluded holds the summary-field labels that represent header,
// party, total or terms information rather than a billable charge. The
// fallback line-item scan skips them.
var FallbackExcluded = map[FieldType]struct{}{
	FieldTotal:              {},
	FieldTax:                {},
	FieldInvoiceReceiptID:   {},
	FieldInvoiceReceiptDate: {},
	FieldVendorName:         {},
	FieldVendorAddress:      {},
	FieldReceiverName:       {},
	FieldReceiverAddress:    {},
	FieldDueDate:            {},
	FieldPaymentTerms:       {},
	FieldTerms:              {},
	FieldShippingHandling:   {},
	FieldGratuity:           {},
	FieldAddress:            {},
	FieldStreet:             {},
	FieldCity:               {},
	FieldState:              {},
	FieldZipCode:            {},
	FieldName:               {},
	FieldAddressBlock:       {},
	FieldClientMatter:       {},
	FieldClientID:           {},
}

// IsFallbackExcluded reports whether a summary field with this label may not
// be treated as a line item.
func IsFallbackExcluded(ft FieldType) bool {
	_, ok := FallbackExcluded[ft]
	return ok
}
