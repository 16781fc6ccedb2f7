package extract

import (
	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// MergeSections folds multiple detected document sections into a single
// logical invoice. The analysis service sometimes splits one multi-page
// invoice into several sections that each capture a different subset of the
// header fields.
//
// The first section is primary and its values are never overwritten. Every
// subsequent section contributes its line-item groups in order, and its
// summary fields only for type-labels no earlier section already claimed.
// Inputs of zero or one section are returned unchanged.
func MergeSections(sections []entity.DocumentSection) []entity.DocumentSection {
	if len(sections) <= 1 {
		return sections
	}

	primary := sections[0]
	claimed := make(map[constants.FieldType]struct{}, len(primary.SummaryFields))
	for _, f := range primary.SummaryFields {
		claimed[f.Type] = struct{}{}
	}

	for _, sec := range sections[1:] {
		primary.LineItemGroups = append(primary.LineItemGroups, sec.LineItemGroups...)
		for _, f := range sec.SummaryFields {
			if f.Type == "" {
				continue
			}
			if _, ok := claimed[f.Type]; ok {
				continue
			}
			primary.SummaryFields = append(primary.SummaryFields, f)
			claimed[f.Type] = struct{}{}
		}
	}

	return []entity.DocumentSection{primary}
}
