package textract

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// toSections converts SDK expense documents into the entity model the
// extractor operates on. Field order is preserved; fields with no detected
// type-label keep an empty Type and are filtered downstream.
func toSections(docs []types.ExpenseDocument) []entity.DocumentSection {
	sections := make([]entity.DocumentSection, 0, len(docs))
	for _, doc := range docs {
		sec := entity.DocumentSection{
			SummaryFields:  toFields(doc.SummaryFields),
			LineItemGroups: make([]entity.LineItemGroup, 0, len(doc.LineItemGroups)),
		}
		for _, group := range doc.LineItemGroups {
			g := entity.LineItemGroup{Items: make([]entity.RawLineItem, 0, len(group.LineItems))}
			for _, item := range group.LineItems {
				g.Items = append(g.Items, entity.RawLineItem{
					Fields: toFields(item.LineItemExpenseFields),
				})
			}
			sec.LineItemGroups = append(sec.LineItemGroups, g)
		}
		sections = append(sections, sec)
	}
	return sections
}

func toFields(fields []types.ExpenseField) []entity.RawField {
	out := make([]entity.RawField, 0, len(fields))
	for _, f := range fields {
		raw := entity.RawField{}
		if f.Type != nil {
			raw.Type = constants.FieldType(aws.ToString(f.Type.Text))
		}
		if f.ValueDetection != nil {
			raw.Value = aws.ToString(f.ValueDetection.Text)
		}
		if f.LabelDetection != nil {
			raw.Label = aws.ToString(f.LabelDetection.Text)
		}
		out = append(out, raw)
	}
	return out
}

// lineBlocks filters a block list down to LINE text in order.
func lineBlocks(blocks []types.Block) []string {
	var lines []string
	for _, b := range blocks {
		if b.BlockType != types.BlockTypeLine {
			continue
		}
		if text := aws.ToString(b.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return lines
}
