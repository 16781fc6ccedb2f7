// Package display renders extracted invoice records as text tables.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

const na = "N/A"

// Render writes the extraction results for one file. Each record prints its
// header fields followed by a line-item table whose columns switch between
// Hours/Rate and Qty/Unit Price depending on the first item's shape.
func Render(w io.Writer, fileName string, records []entity.InvoiceRecord) {
	rule := strings.Repeat("=", 100)
	fmt.Fprintf(w, "\n%s\nExtraction Results for: %s\n%s\n", rule, fileName, rule)

	if len(records) == 0 {
		fmt.Fprintln(w, "No data was extracted.")
		fmt.Fprintln(w, rule)
		return
	}

	for i, rec := range records {
		if len(records) > 1 {
			fmt.Fprintf(w, "\n--- Invoice Document %d of %d ---\n", i+1, len(records))
		}
		fmt.Fprintf(w, "Invoice Number: %s\n", rec.InvoiceNumber)
		fmt.Fprintf(w, "Invoice Date:   %s\n", rec.InvoiceDate)
		fmt.Fprintf(w, "Invoice Total:  %s\n", rec.InvoiceTotal)
		fmt.Fprintf(w, "Payment Terms:  %s\n", orNA(rec.PaymentTerms))

		fmt.Fprintln(w, "\n--- Line Items ---")
		if len(rec.LineItems) == 0 {
			fmt.Fprintln(w, "  No line items found.")
			continue
		}
		renderItems(w, rec.LineItems)
	}
	fmt.Fprintln(w, rule)
}

func renderItems(w io.Writer, items []entity.NormalizedLineItem) {
	timeBilled := items[0].Kind == entity.LineItemTimeBilled

	table := tablewriter.NewWriter(w)
	if timeBilled {
		table.SetHeader([]string{"#", "Description", "Hours", "Rate", "Amount"})
	} else {
		table.SetHeader([]string{"#", "Description", "Qty", "Unit Price", "Amount"})
	}
	table.SetAutoWrapText(true)
	table.SetColWidth(50)
	table.SetRowLine(true)

	for i, item := range items {
		desc := strings.ReplaceAll(item.Description, "\n", " ")
		var mid1, mid2 string
		if timeBilled {
			mid1, mid2 = orNA(item.Hours), orNA(item.Rate)
		} else {
			mid1, mid2 = orNA(item.Quantity), orNA(item.UnitPrice)
		}
		table.Append([]string{strconv.Itoa(i + 1), desc, mid1, mid2, orNA(item.Amount)})
	}
	table.Render()
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return na
	}
	return *s
}
