package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeInputs maps loosely typed solver inputs (from YAML scenarios or JSON
// request bodies) onto a typed input struct. Weak typing is enabled so
// json.Number / float64 numerics decode into ints.
func DecodeInputs(in map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build input decoder: %w", err)
	}
	if err := decoder.Decode(in); err != nil {
		return &InvalidInputError{Field: "inputs", Reason: err.Error()}
	}
	return nil
}
