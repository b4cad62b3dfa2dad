// Package validation implements the declarative requiredness model the
// questionnaires are checked against: static required fields plus fields
// that only become required when a predicate over the aggregate data holds.
package validation

import (
	"fmt"
	"reflect"
	"strings"
)

// Required marks a field that must always carry a non-empty value. Message is
// the user-facing violation text, already localized.
type Required struct {
	Field   string
	Message string
}

// Condition decides, from the full aggregate data, whether a conditional
// field is currently required. Predicates may reference fields owned by other
// steps; evaluation always sees the cross-step aggregate.
type Condition func(data map[string]any) bool

// Conditional marks a field that is required only while When returns true.
type Conditional struct {
	Field string
	When  Condition
}

// RuleSet is the bundle of rules for one (form variant, step id) pair.
// Declaration order is significant: Evaluate reports violations in it.
type RuleSet struct {
	Required    []Required
	Conditional []Conditional
}

// Empty reports whether v counts as "not answered": nil, the empty string or
// a zero-length list. A boolean false is an informed answer, not emptiness;
// the intake flags default to false and explicitly keeping them so is valid.
func Empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		return rv.Len() == 0
	}
	return false
}

// Evaluate walks data against rs and returns the violated rules' messages.
// Required violations come first in declaration order, then conditional ones,
// so downstream truncation of the list stays deterministic. The function is
// pure: no side effects, identical output for identical input.
func Evaluate(rs RuleSet, data map[string]any) []string {
	var violations []string
	for _, rule := range rs.Required {
		if Empty(data[rule.Field]) {
			violations = append(violations, rule.Message)
		}
	}
	for _, rule := range rs.Conditional {
		if rule.When == nil || !rule.When(data) {
			continue
		}
		if Empty(data[rule.Field]) {
			violations = append(violations, fmt.Sprintf("%s é obrigatório quando a condição é atendida", rule.Field))
		}
	}
	return violations
}

// Summarize renders a bounded user-facing message: a single violation is
// shown verbatim, more than one becomes a count header with the first max
// entries bulleted and the remainder collapsed into an ellipsis.
func Summarize(violations []string, max int) string {
	switch {
	case len(violations) == 0:
		return ""
	case len(violations) == 1:
		return violations[0]
	}
	if max <= 0 {
		max = 3
	}
	shown := violations
	if len(shown) > max {
		shown = shown[:max]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d campos obrigatórios não preenchidos:", len(violations))
	for _, v := range shown {
		b.WriteString("\n• ")
		b.WriteString(v)
	}
	if len(violations) > max {
		b.WriteString("\n• ...")
	}
	return b.String()
}
