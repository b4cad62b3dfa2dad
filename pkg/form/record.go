package form

import "reflect"

// Record is the aggregate data built across the steps of one form session.
// Values are the plain JSON-ish kinds the questionnaires produce: string,
// bool, float64, date strings and []string for multi-select tags. A key that
// is absent means "never answered", which is distinct from an empty string.
type Record map[string]any

// Clone returns a shallow copy of r. Container values keep their identity;
// callers replace lists wholesale instead of mutating them in place.
func Clone(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a new record holding base overlaid with patch. Neither input
// is mutated.
func Merge(base, patch Record) Record {
	out := Clone(base)
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// ShallowEqual reports whether a and b hold the same keys with the same
// values. Primitive values compare by value; slices, maps and other reference
// kinds compare by identity. This is the equality gate that keeps state
// stores from notifying on recomputed-but-identical snapshots.
func ShallowEqual(a, b Record) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !sameValue(av, bv) {
			return false
		}
	}
	return true
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		// Reference identity only. Two lists with equal elements but
		// different backing arrays are treated as different values.
		return ra.Pointer() == rb.Pointer()
	case reflect.Ptr, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	default:
		return a == b
	}
}
