package cliware

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/cliware/cliware/logging"
)

// DecodeLogging turns the merged logging subtree into typed method
// configurations. An absent subtree is valid and yields no methods.
func DecodeLogging(tree map[string]any) (map[string]logging.MethodConfig, error) {
	raw, ok := tree["logging"]
	if !ok || raw == nil {
		return map[string]logging.MethodConfig{}, nil
	}

	out := map[string]logging.MethodConfig{}
	if err := decode(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding logging config: %w", err)
	}
	return out, nil
}

// DecodeOptionDefs turns the merged optionDefinitions sequence into typed
// records, preserving order (defaults first, caller's appended).
func DecodeOptionDefs(tree map[string]any) ([]OptionDef, error) {
	raw, ok := tree["optionDefinitions"]
	if !ok || raw == nil {
		return nil, nil
	}

	var defs []OptionDef
	if err := decode(raw, &defs); err != nil {
		return nil, fmt.Errorf("decoding option definitions: %w", err)
	}
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("option definition %d has no name", i)
		}
	}
	return defs, nil
}

func decode(raw, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  result,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
