package llm

// BuildExperienceJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for a single experience entry as a generic map. We use it locally to
// filter malformed entries out of the model's reply.
func BuildExperienceJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"Company":                  map[string]any{"type": "string", "minLength": 1},
			"Role Held at the Company": map[string]any{"type": "string", "minLength": 1},
			"Start Date":               map[string]any{"type": "string"},
			"End Date":                 map[string]any{"type": "string"},
			"Years Worked There":       map[string]any{"type": "string"},
			"Brief Description":        map[string]any{"type": "string"},
		},
		"required": []string{"Company", "Role Held at the Company"},
	}
}
