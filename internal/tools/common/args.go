package common

import (
	"encoding/json"
	"fmt"
)

// RequiredString extracts a required non-empty string argument.
func RequiredString(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// RequiredList extracts a required non-empty array argument.
func RequiredList(args map[string]interface{}, key string) ([]interface{}, error) {
	v, ok := args[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("%s must not be empty", key)
	}
	return v, nil
}

// RequiredInt extracts a required integer argument. JSON numbers arrive as
// float64, so both representations are accepted.
func RequiredInt(args map[string]interface{}, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s is required", key)
	}
}

// OptionalArg returns the raw argument value, or nil when absent. The nil
// is serialized as an explicit JSON null so the extension can tell an
// omitted parameter from an empty one.
func OptionalArg(args map[string]interface{}, key string) interface{} {
	if v, ok := args[key]; ok {
		return v
	}
	return nil
}

// OptionalBool extracts an optional boolean argument with a default.
func OptionalBool(args map[string]interface{}, key string, defaultValue bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return defaultValue
}

// ClampedMaxResults returns the max_results argument clamped to [1, cap].
// Returns nil (serialized as JSON null) when the argument is absent so the
// extension applies its own default.
func ClampedMaxResults(args map[string]interface{}, cap int) interface{} {
	v, ok := args["max_results"].(float64)
	if !ok {
		return nil
	}

	n := int(v)
	if n < 1 {
		n = 1
	}
	if n > cap {
		n = cap
	}
	return n
}

// ResultJSON marshals a bridge result to an indented JSON string for
// returning as tool result text.
func ResultJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format result: %w", err)
	}
	return string(data), nil
}
