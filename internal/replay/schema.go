package replay

// buildResponseSchema returns a JSON-Schema (draft 2020-12 subset) for a
// saved GetExpenseAnalysis response, as a generic map. Validation is shape
// level: it guards against feeding an unrelated JSON document into the
// extractor, not against every malformed field (the extractor itself
// degrades on those).
func buildResponseSchema() map[string]any {
	detection := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"Text": map[string]any{"type": "string"},
		},
	}
	field := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"Type": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"Text": map[string]any{"type": "string"},
				},
			},
			"ValueDetection": detection,
			"LabelDetection": detection,
		},
	}
	return map[string]any{
		"type":     "object",
		"required": []string{"ExpenseDocuments"},
		"properties": map[string]any{
			"JobStatus": map[string]any{"type": "string"},
			"ExpenseDocuments": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"SummaryFields": map[string]any{
							"type":  "array",
							"items": field,
						},
						"LineItemGroups": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"LineItems": map[string]any{
										"type": "array",
										"items": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"LineItemExpenseFields": map[string]any{
													"type":  "array",
													"items": field,
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
