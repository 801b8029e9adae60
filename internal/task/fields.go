package task

import (
	"fmt"
	"strconv"

	"github.com/TirthDhandhukia30/ai-task-gateway/internal/prompt"
)

// templateField reads a config string, resolves its placeholders against
// input, and coerces the result to a string. Absent fields become "".
func templateField(cfg map[string]any, key string, input any) string {
	switch v := prompt.Substitute(cfg[key], input).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func stringField(cfg map[string]any, key string) string {
	s, _ := cfg[key].(string)
	return s
}

// floatField accepts JSON numbers and numeric strings. Anything unparsable
// falls open to the default, same as absence.
func floatField(cfg map[string]any, key string, fallback float64) float64 {
	switch v := cfg[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func intField(cfg map[string]any, key string, fallback int) int {
	switch v := cfg[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
