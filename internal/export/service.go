package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// Service produces XLSX bytes for extracted invoice records.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteInvoicesXLSX returns an XLSX workbook with one row per line item,
// invoice header columns repeated on each of its rows. An invoice with no
// line items still gets one row so its header fields are not lost.
func (s *Service) WriteInvoicesXLSX(records []entity.InvoiceRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Number",
		"Invoice Date",
		"Invoice Total",
		"Payment Terms",
		"Line Item",
		"Qty/Hours",
		"Unit Price/Rate",
		"Amount",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, rec := range records {
		terms := ""
		if rec.PaymentTerms != nil {
			terms = *rec.PaymentTerms
		}

		write := func(col int, v string) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		writeHeader := func() {
			write(1, rec.InvoiceNumber)
			write(2, rec.InvoiceDate)
			write(3, rec.InvoiceTotal)
			write(4, terms)
		}

		if len(rec.LineItems) == 0 {
			writeHeader()
			row++
			continue
		}

		for _, item := range rec.LineItems {
			writeHeader()
			write(5, item.Description)
			switch item.Kind {
			case entity.LineItemTimeBilled:
				write(6, deref(item.Hours))
				write(7, deref(item.Rate))
			case entity.LineItemQuantityPriced:
				write(6, deref(item.Quantity))
				write(7, deref(item.UnitPrice))
			}
			write(8, deref(item.Amount))
			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // invoice number
	_ = f.SetColWidth(sheet, "B", "C", 14) // date, total
	_ = f.SetColWidth(sheet, "D", "D", 40) // terms
	_ = f.SetColWidth(sheet, "E", "E", 48) // description
	_ = f.SetColWidth(sheet, "F", "H", 14) // numbers

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoices", len(records),
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
