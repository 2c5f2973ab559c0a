package llm

import (
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// ValidateRaw checks that raw is valid JSON conforming to schema: required
// properties present, value types matching. A nil schema only requires valid
// JSON.
func ValidateRaw(schema *genai.Schema, raw []byte) error {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if schema == nil {
		return nil
	}
	return validateValue(schema, value, "$")
}

func validateValue(schema *genai.Schema, value interface{}, path string) error {
	switch schema.Type {
	case genai.TypeObject:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%s: expected object", path)
		}
		for _, name := range schema.Required {
			if _, present := obj[name]; !present {
				return fmt.Errorf("%s: missing required property %q", path, name)
			}
		}
		for name, propSchema := range schema.Properties {
			propValue, present := obj[name]
			if !present || propValue == nil {
				continue
			}
			if err := validateValue(propSchema, propValue, path+"."+name); err != nil {
				return err
			}
		}
		return nil
	case genai.TypeArray:
		arr, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("%s: expected array", path)
		}
		if schema.Items != nil {
			for i, item := range arr {
				if err := validateValue(schema.Items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
		return nil
	case genai.TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s: expected string", path)
		}
		return nil
	case genai.TypeNumber, genai.TypeInteger:
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("%s: expected number", path)
		}
		return nil
	case genai.TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", path)
		}
		return nil
	default:
		return nil
	}
}
