package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

const sampleResponse = `{
  "JobStatus": "SUCCEEDED",
  "ExpenseDocuments": [
    {
      "SummaryFields": [
        {"Type": {"Text": "INVOICE_RECEIPT_ID"}, "ValueDetection": {"Text": "INV-1"}},
        {"Type": {"Text": "SERVICE_CHARGE"}, "ValueDetection": {"Text": "45.00"}, "LabelDetection": {"Text": "Service Fee"}}
      ],
      "LineItemGroups": [
        {
          "LineItems": [
            {
              "LineItemExpenseFields": [
                {"Type": {"Text": "ITEM"}, "ValueDetection": {"Text": "Widget"}},
                {"Type": {"Text": "PRICE"}, "ValueDetection": {"Text": "6.00"}}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestLoad(t *testing.T) {
	res, err := Load([]byte(sampleResponse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(res.Sections))
	}

	sec := res.Sections[0]
	if len(sec.SummaryFields) != 2 {
		t.Fatalf("got %d summary fields, want 2", len(sec.SummaryFields))
	}
	if sec.SummaryFields[0].Type != constants.FieldInvoiceReceiptID || sec.SummaryFields[0].Value != "INV-1" {
		t.Errorf("first summary field: %+v", sec.SummaryFields[0])
	}
	if sec.SummaryFields[1].Label != "Service Fee" {
		t.Errorf("label lost: %+v", sec.SummaryFields[1])
	}
	if len(sec.LineItemGroups) != 1 || len(sec.LineItemGroups[0].Items) != 1 {
		t.Fatalf("line item groups: %+v", sec.LineItemGroups)
	}
	if fields := sec.LineItemGroups[0].Items[0].Fields; len(fields) != 2 || fields[0].Value != "Widget" {
		t.Errorf("item fields: %+v", fields)
	}
}

func TestLoadRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an expense response", `{"Transactions": []}`},
		{"documents not an array", `{"ExpenseDocuments": "nope"}`},
		{"malformed json", `{"ExpenseDocuments": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.json")
	if err := os.WriteFile(path, []byte(sampleResponse), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sections) != 1 {
		t.Errorf("got %d sections, want 1", len(res.Sections))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
