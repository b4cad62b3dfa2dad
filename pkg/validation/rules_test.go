package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"blank string", "", true},
		{"string", "BELÉM", false},
		{"false is an answer", false, false},
		{"true", true, false},
		{"empty string slice", []string{}, true},
		{"string slice", []string{"FÍSICA"}, false},
		{"empty any slice", []any{}, true},
		{"zero number", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Empty(tc.value); got != tc.want {
				t.Fatalf("Empty(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	rs := RuleSet{
		Required: []Required{
			{Field: "first", Message: "first é obrigatório"},
			{Field: "second", Message: "second é obrigatório"},
		},
		Conditional: []Conditional{
			{Field: "third", When: func(data map[string]any) bool { return data["trigger"] == true }},
		},
	}
	data := map[string]any{"trigger": true}

	got := Evaluate(rs, data)
	want := []string{
		"first é obrigatório",
		"second é obrigatório",
		"third é obrigatório quando a condição é atendida",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateConditionalNotTriggered(t *testing.T) {
	rs := RuleSet{
		Conditional: []Conditional{
			{Field: "detail", When: func(data map[string]any) bool { return data["flag"] == true }},
		},
	}
	if got := Evaluate(rs, map[string]any{"flag": false}); len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestEvaluateConditionalSatisfied(t *testing.T) {
	rs := RuleSet{
		Conditional: []Conditional{
			{Field: "detail", When: func(data map[string]any) bool { return data["flag"] == true }},
		},
	}
	data := map[string]any{"flag": true, "detail": "preenchido"}
	if got := Evaluate(rs, data); len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestEvaluateDoesNotMutateData(t *testing.T) {
	rs := RuleSet{
		Required: []Required{{Field: "name", Message: "name é obrigatório"}},
	}
	data := map[string]any{"other": "value"}
	Evaluate(rs, data)
	want := map[string]any{"other": "value"}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("data mutated (-want +got):\n%s", diff)
	}
}

func TestSummarizeSingle(t *testing.T) {
	got := Summarize([]string{"Nome da vítima é obrigatório"}, 3)
	if got != "Nome da vítima é obrigatório" {
		t.Fatalf("single violation should pass through verbatim, got %q", got)
	}
}

func TestSummarizeTruncation(t *testing.T) {
	violations := []string{"um", "dois", "três", "quatro", "cinco"}
	got := Summarize(violations, 3)

	if !strings.HasPrefix(got, "5 campos obrigatórios não preenchidos:") {
		t.Fatalf("missing header: %q", got)
	}
	for _, v := range violations[:3] {
		if !strings.Contains(got, "• "+v) {
			t.Fatalf("missing bullet for %q in %q", v, got)
		}
	}
	if strings.Contains(got, "quatro") {
		t.Fatalf("should not list beyond the cap: %q", got)
	}
	if !strings.HasSuffix(got, "• ...") {
		t.Fatalf("missing overflow marker: %q", got)
	}
}

func TestSummarizeAtCap(t *testing.T) {
	got := Summarize([]string{"um", "dois", "três"}, 3)
	if strings.Contains(got, "...") {
		t.Fatalf("no overflow marker expected at the cap: %q", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil, 3); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}
