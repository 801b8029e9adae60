package prompt

import (
	"encoding/json"
	"testing"
)

func decodeInput(t *testing.T, raw string) any {
	t.Helper()
	var input any
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		t.Fatalf("bad test input %q: %v", raw, err)
	}
	return input
}

func TestSubstitute_NonStringPassThrough(t *testing.T) {
	input := decodeInput(t, `{"a": 1}`)

	for _, v := range []any{42, 3.14, true, nil, map[string]any{"k": "v"}, []any{1, 2}} {
		got := Substitute(v, input)
		switch v.(type) {
		case map[string]any, []any:
			// reference types: same value back, not a rendered string
			if _, isString := got.(string); isString {
				t.Errorf("Expected non-string pass-through for %T, got string %q", v, got)
			}
		default:
			if got != v {
				t.Errorf("Expected %v unchanged, got %v", v, got)
			}
		}
	}
}

func TestSubstituteString_WholeInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"object", decodeInput(t, `{"name":"Ada","n":5}`), `{"n":5,"name":"Ada"}`},
		{"array", decodeInput(t, `[1,2,3]`), `[1,2,3]`},
		{"string", "plain", "plain"},
		{"number", float64(5), "5"},
		{"bool", true, "true"},
		{"null", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstituteString("{{input}}", tt.input)
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSubstituteString_ResolvesNestedPath(t *testing.T) {
	input := decodeInput(t, `{"a": {"b": 5}}`)

	got := SubstituteString("{{input.a.b}}", input)
	if got != "5" {
		t.Errorf("Expected \"5\", got %q", got)
	}
}

func TestSubstituteString_UnresolvedPathLeftVerbatim(t *testing.T) {
	input := decodeInput(t, `{"a": 1}`)

	tests := []struct {
		name string
		text string
	}{
		{"missing field", "{{input.a.c}}"},
		{"step into scalar", "{{input.a.b.c}}"},
		{"top-level miss", "{{input.nope}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstituteString(tt.text, input)
			if got != tt.text {
				t.Errorf("Expected placeholder %q left verbatim, got %q", tt.text, got)
			}
		})
	}
}

func TestSubstituteString_MultiplePlaceholdersIndependent(t *testing.T) {
	input := decodeInput(t, `{"user": {"name": "Ada"}, "topic": "logic"}`)

	got := SubstituteString("Hello {{input.user.name}}, about {{input.topic}} and {{input.missing}}.", input)
	want := "Hello Ada, about logic and {{input.missing}}."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSubstituteString_StructuredFieldRenderedAsJSON(t *testing.T) {
	input := decodeInput(t, `{"user": {"name": "Ada", "tags": ["x","y"]}}`)

	got := SubstituteString("{{input.user.tags}}", input)
	if got != `["x","y"]` {
		t.Errorf("Expected JSON array, got %q", got)
	}
}

func TestSubstituteString_WholeInputPassRunsFirst(t *testing.T) {
	input := decodeInput(t, `{"a": "x"}`)

	got := SubstituteString("{{input}} / {{input.a}}", input)
	want := `{"a":"x"} / x`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSubstituteString_Idempotent(t *testing.T) {
	input := decodeInput(t, `{"user": {"name": "Ada"}}`)

	once := SubstituteString("Hi {{input.user.name}}!", input)
	twice := SubstituteString(once, input)
	if once != twice {
		t.Errorf("Expected idempotence, got %q then %q", once, twice)
	}
}
