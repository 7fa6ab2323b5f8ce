package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// FilterValidExperiences keeps only entries that satisfy the item schema.
// Invalid entries are dropped, never fatal: a partially usable reply is
// worth more than a failed request.
func FilterValidExperiences(schemaMap map[string]any, in []JobExperience) (valid []JobExperience, droppedIdx []int) {
	for i, e := range in {
		b, err := json.Marshal(e)
		if err != nil {
			droppedIdx = append(droppedIdx, i)
			continue
		}
		if err := ValidateJSONAgainstSchema(schemaMap, b); err != nil {
			droppedIdx = append(droppedIdx, i)
			continue
		}
		valid = append(valid, e)
	}
	return valid, droppedIdx
}
