// Package replay loads saved GetExpenseAnalysis responses so the extraction
// pipeline can run without AWS credentials or a live Textract job.
package replay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// Wire shapes of a saved expense-analysis response. Only the keys the
// extractor consumes are modeled; everything else is ignored on decode.
type response struct {
	JobStatus        string            `json:"JobStatus,omitempty"`
	ExpenseDocuments []expenseDocument `json:"ExpenseDocuments"`
}

type expenseDocument struct {
	SummaryFields  []expenseField  `json:"SummaryFields,omitempty"`
	LineItemGroups []lineItemGroup `json:"LineItemGroups,omitempty"`
}

type expenseField struct {
	Type           *typeText  `json:"Type,omitempty"`
	ValueDetection *detection `json:"ValueDetection,omitempty"`
	LabelDetection *detection `json:"LabelDetection,omitempty"`
}

type typeText struct {
	Text string `json:"Text,omitempty"`
}

type detection struct {
	Text string `json:"Text,omitempty"`
}

type lineItemGroup struct {
	LineItems []lineItem `json:"LineItems,omitempty"`
}

type lineItem struct {
	LineItemExpenseFields []expenseField `json:"LineItemExpenseFields,omitempty"`
}

// LoadFile reads a saved response, validates its shape against the response
// schema and converts it to the entity model.
func LoadFile(path string) (entity.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.AnalysisResult{}, fmt.Errorf("read replay file: %w", err)
	}
	return Load(data)
}

// Load validates and converts a saved response held in memory.
func Load(data []byte) (entity.AnalysisResult, error) {
	if err := validateShape(data); err != nil {
		return entity.AnalysisResult{}, err
	}

	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return entity.AnalysisResult{}, fmt.Errorf("decode response: %w", err)
	}

	sections := make([]entity.DocumentSection, 0, len(resp.ExpenseDocuments))
	for _, doc := range resp.ExpenseDocuments {
		sec := entity.DocumentSection{
			SummaryFields: toFields(doc.SummaryFields),
		}
		for _, group := range doc.LineItemGroups {
			g := entity.LineItemGroup{}
			for _, item := range group.LineItems {
				g.Items = append(g.Items, entity.RawLineItem{
					Fields: toFields(item.LineItemExpenseFields),
				})
			}
			sec.LineItemGroups = append(sec.LineItemGroups, g)
		}
		sections = append(sections, sec)
	}
	return entity.AnalysisResult{Sections: sections}, nil
}

func validateShape(data []byte) error {
	schemaBytes, err := json.Marshal(buildResponseSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("response.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("response.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode replay json: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("replay json does not match expense response shape: %w", err)
	}
	return nil
}

func toFields(fields []expenseField) []entity.RawField {
	out := make([]entity.RawField, 0, len(fields))
	for _, f := range fields {
		raw := entity.RawField{}
		if f.Type != nil {
			raw.Type = constants.FieldType(f.Type.Text)
		}
		if f.ValueDetection != nil {
			raw.Value = f.ValueDetection.Text
		}
		if f.LabelDetection != nil {
			raw.Label = f.LabelDetection.Text
		}
		out = append(out, raw)
	}
	return out
}
