package listing

import (
	"strings"

	"github.com/guardia-pa/guardia/pkg/form"
)

// Matcher reports whether a record matches a search term.
type Matcher[T any] func(record T, term string) bool

// Filter returns the records matching term, preserving order. A blank term
// matches everything, which is what makes an emptied search box fall back to
// the full list.
func Filter[T any](list []T, term string, match Matcher[T]) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return list
	}
	out := make([]T, 0, len(list))
	for _, record := range list {
		if match(record, term) {
			out = append(out, record)
		}
	}
	return out
}

// RecordMatcher builds the table search predicate for map records: the term
// matches case-insensitively as a substring of the name field, or verbatim as
// a substring of any of the identification-number fields.
func RecordMatcher(nameField string, idFields ...string) Matcher[form.Record] {
	return func(record form.Record, term string) bool {
		if name, ok := record[nameField].(string); ok {
			if strings.Contains(strings.ToLower(name), strings.ToLower(term)) {
				return true
			}
		}
		for _, field := range idFields {
			if id, ok := record[field].(string); ok && strings.Contains(id, term) {
				return true
			}
		}
		return false
	}
}
