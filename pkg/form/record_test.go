package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneIsIndependent(t *testing.T) {
	original := Record{"name": "Maria", "flag": true}
	clone := Clone(original)

	clone["name"] = "Ana"
	if original["name"] != "Maria" {
		t.Fatalf("clone mutation leaked into original: %v", original)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Record{"a": "1", "b": "2"}
	patch := Record{"b": "3", "c": "4"}

	got := Merge(base, patch)

	want := Record{"a": "1", "b": "3", "c": "4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge result mismatch (-want +got):\n%s", diff)
	}
	if base["b"] != "2" {
		t.Fatalf("base was mutated: %v", base)
	}
	if len(patch) != 2 {
		t.Fatalf("patch was mutated: %v", patch)
	}
}

func TestShallowEqualPrimitives(t *testing.T) {
	a := Record{"name": "Maria", "age": 30, "flag": false}
	b := Record{"name": "Maria", "age": 30, "flag": false}
	if !ShallowEqual(a, b) {
		t.Fatal("records with equal primitive values should be shallow-equal")
	}

	b["flag"] = true
	if ShallowEqual(a, b) {
		t.Fatal("records with a differing value should not be shallow-equal")
	}
}

func TestShallowEqualMissingKey(t *testing.T) {
	a := Record{"name": "Maria", "cpf": ""}
	b := Record{"name": "Maria"}
	if ShallowEqual(a, b) {
		t.Fatal("an absent key is not the same as an empty value")
	}
}

func TestShallowEqualSliceIdentity(t *testing.T) {
	list := []string{"FÍSICA"}
	a := Record{"types": list}
	b := Record{"types": list}
	if !ShallowEqual(a, b) {
		t.Fatal("same backing slice should compare equal")
	}

	b["types"] = []string{"FÍSICA"}
	if ShallowEqual(a, b) {
		t.Fatal("distinct slices compare by identity, not contents")
	}
}

func TestShallowEqualNilValues(t *testing.T) {
	a := Record{"x": nil}
	b := Record{"x": nil}
	if !ShallowEqual(a, b) {
		t.Fatal("nil values should compare equal")
	}
	b["x"] = ""
	if ShallowEqual(a, b) {
		t.Fatal("nil and empty string are different answers")
	}
}
