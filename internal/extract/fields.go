package extract

import (
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// Extractor turns merged document sections into normalized invoice records.
// It never fails a whole record: missing data degrades to explicit unknown
// markers and, in the worst case, an empty line-item list.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractInvoices merges the result's sections and extracts one record per
// logical invoice.
func (e *Extractor) ExtractInvoices(res entity.AnalysisResult) []entity.InvoiceRecord {
	if len(res.Sections) == 0 {
		e.logger.Warn("analysis result contains no document sections")
		return nil
	}
	if len(res.Sections) > 1 {
		e.logger.Info("multiple document sections found, merging", "sections", len(res.Sections))
	}

	merged := MergeSections(res.Sections)
	records := make([]entity.InvoiceRecord, 0, len(merged))
	for _, sec := range merged {
		records = append(records, e.extractRecord(sec))
	}
	return records
}

func (e *Extractor) extractRecord(sec entity.DocumentSection) entity.InvoiceRecord {
	summary := summaryMap(sec.SummaryFields)

	rec := entity.InvoiceRecord{
		InvoiceNumber: valueOr(summary, constants.FieldInvoiceReceiptID, entity.UnknownValue),
		InvoiceDate:   valueOr(summary, constants.FieldInvoiceReceiptDate, entity.UnknownValue),
		InvoiceTotal:  valueOr(summary, constants.FieldTotal, entity.UnknownValue),
		PaymentTerms:  paymentTerms(summary),
	}

	rec.LineItems = e.structuredLineItems(sec)
	if len(rec.LineItems) == 0 {
		e.logger.Info("no structured line items found, scanning summary fields for fallback items")
		rec.LineItems = e.fallbackLineItems(sec.SummaryFields)
	}
	return rec
}

// summaryMap indexes summary fields by type-label, first occurrence wins.
func summaryMap(fields []entity.RawField) map[constants.FieldType]string {
	m := make(map[constants.FieldType]string, len(fields))
	for _, f := range fields {
		if f.Type == "" {
			continue
		}
		if _, ok := m[f.Type]; !ok {
			m[f.Type] = f.Value
		}
	}
	return m
}

func valueOr(m map[constants.FieldType]string, ft constants.FieldType, fallback string) string {
	if v, ok := m[ft]; ok && v != "" {
		return v
	}
	return fallback
}

// paymentTerms prefers PAYMENT_TERMS over TERMS. A value that is blank after
// trimming counts as absent, not as found-but-empty.
func paymentTerms(m map[constants.FieldType]string) *string {
	v := strings.TrimSpace(m[constants.FieldPaymentTerms])
	if v == "" {
		v = strings.TrimSpace(m[constants.FieldTerms])
	}
	if v == "" {
		return nil
	}
	return &v
}

// structuredLineItems walks every line-item group and classifies each row.
// Rows without an ITEM description carry no usable identity and are dropped
// silently.
func (e *Extractor) structuredLineItems(sec entity.DocumentSection) []entity.NormalizedLineItem {
	var items []entity.NormalizedLineItem
	for _, group := range sec.LineItemGroups {
		for _, raw := range group.Items {
			fields := summaryMap(raw.Fields)

			desc := strings.TrimSpace(fields[constants.FieldItem])
			if desc == "" {
				continue
			}

			amount := lookup(fields, constants.FieldPrice)
			if amount == nil {
				amount = lookup(fields, constants.FieldAmount)
			}
			quantity := lookup(fields, constants.FieldQuantity)
			hours := lookup(fields, constants.FieldHours)

			item := entity.NormalizedLineItem{
				Description: desc,
				Amount:      amount,
			}

			// Precedence: hours > fractional quantity > integer quantity.
			switch {
			case hours != nil || (quantity != nil && strings.Contains(*quantity, ".")):
				item.Kind = entity.LineItemTimeBilled
				if hours != nil {
					item.Hours = hours
				} else {
					item.Hours = quantity
				}
				item.Rate = lookup(fields, constants.FieldRate)
			case quantity != nil:
				item.Kind = entity.LineItemQuantityPriced
				item.Quantity = quantity
				item.UnitPrice = lookup(fields, constants.FieldUnitPrice)
			default:
				item.Kind = entity.LineItemMinimal
			}

			items = append(items, item)
		}
	}
	return items
}

// fallbackLineItems recovers invoices that have no itemized table but do
// carry labeled numeric charges as summary fields (a flat SERVICE_CHARGE,
// say). Header, party and terms labels are excluded, and a candidate is kept
// only when its value parses as an amount; the raw string is preserved for
// display.
func (e *Extractor) fallbackLineItems(fields []entity.RawField) []entity.NormalizedLineItem {
	var items []entity.NormalizedLineItem
	for _, f := range fields {
		if f.Type == "" || constants.IsFallbackExcluded(f.Type) {
			continue
		}
		if f.Value == "" {
			continue
		}
		if _, ok := ParseAmount(f.Value); !ok {
			continue
		}

		desc := f.Label
		if desc == "" {
			desc = string(f.Type)
		}
		amount := f.Value
		items = append(items, entity.NormalizedLineItem{
			Kind:        entity.LineItemMinimal,
			Description: desc,
			Amount:      &amount,
		})
	}
	if len(items) > 0 {
		e.logger.Info("recovered fallback line items from summary fields", "count", len(items))
	}
	return items
}

func lookup(m map[constants.FieldType]string, ft constants.FieldType) *string {
	if v, ok := m[ft]; ok {
		return &v
	}
	return nil
}
