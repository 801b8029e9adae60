// Package prompt resolves {{input}} and {{input.<path>}} placeholders in
// task configuration strings against the request's input value.
package prompt

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var pathPattern = regexp.MustCompile(`\{\{input\.([^{}]+)\}\}`)

// Substitute resolves template placeholders in v against input. Non-string
// values pass through unchanged. The whole-input pass ({{input}}) runs
// before the field-path pass ({{input.a.b}}); both replace all occurrences.
// A path that cannot be resolved leaves its placeholder text verbatim.
func Substitute(v any, input any) any {
	text, ok := v.(string)
	if !ok {
		return v
	}
	return SubstituteString(text, input)
}

func SubstituteString(text string, input any) string {
	text = strings.ReplaceAll(text, "{{input}}", stringify(input))

	return pathPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSuffix(strings.TrimPrefix(match, "{{input."), "}}")
		value, ok := resolve(input, path)
		if !ok {
			return match
		}
		return stringify(value)
	})
}

// resolve walks input field-by-field along a dot-separated path. Stepping
// into anything but a JSON object aborts the walk.
func resolve(input any, path string) (any, bool) {
	current := input
	for _, field := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[field]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// stringify renders structured values as JSON and scalars in their plain
// string form (no quotes around strings, "5" for the number 5).
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case map[string]any, []any:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(encoded)
	default:
		return fmt.Sprint(val)
	}
}
