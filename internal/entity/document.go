package entity

import "github.com/joseph-ayodele/invoice-extractor/constants"

// RawField is one detected (type-label, value) pair. Label carries the
// free-text label Textract saw next to the value, when it saw one.
// Immutable once produced by the analysis collaborator.
type RawField struct {
	Type  constants.FieldType
	Value string
	Label string
}

// RawLineItem is the ordered set of fields detected for a single table row.
type RawLineItem struct {
	Fields []RawField
}

// LineItemGroup is a cluster of line items detected together, typically one
// table region.
type LineItemGroup struct {
	Items []RawLineItem
}

// DocumentSection is one invoice-like region the analysis service detected.
// A single physical document may yield several sections that describe the
// same logical invoice; MergeSections reconciles them.
type DocumentSection struct {
	SummaryFields  []RawField
	LineItemGroups []LineItemGroup
}

// AnalysisResult is the terminal, fully paginated output of an expense
// analysis job.
type AnalysisResult struct {
	Sections []DocumentSection
}

// DocumentLocation addresses a document staged for analysis.
type DocumentLocation struct {
	Bucket string
	Key    string
}
