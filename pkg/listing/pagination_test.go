package listing

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/guardia-pa/guardia/pkg/form"
)

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPageSlicing(t *testing.T) {
	list := numbered(14)

	if got := Page(list, 1, 6); len(got) != 6 || got[0] != 0 {
		t.Fatalf("page 1 = %v", got)
	}
	if got := Page(list, 3, 6); len(got) != 2 || got[0] != 12 {
		t.Fatalf("last partial page = %v", got)
	}
	if got := Page(list, 4, 6); got != nil {
		t.Fatalf("out-of-range page should be empty, got %v", got)
	}
	if got := Page(list, 0, 6); got != nil {
		t.Fatalf("page 0 should be empty, got %v", got)
	}
}

func TestPagesConcatenateToList(t *testing.T) {
	list := numbered(25)
	size := 6

	var rebuilt []int
	for page := 1; page <= TotalPages(len(list), size); page++ {
		rebuilt = append(rebuilt, Page(list, page, size)...)
	}
	if diff := cmp.Diff(list, rebuilt); diff != "" {
		t.Fatalf("pages do not reconstruct the list (-want +got):\n%s", diff)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		length, size, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_by_%d", tc.length, tc.size), func(t *testing.T) {
			if got := TotalPages(tc.length, tc.size); got != tc.want {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.length, tc.size, got, tc.want)
			}
		})
	}
}

func TestFilterBlankTermReturnsAll(t *testing.T) {
	list := []string{"a", "b", "c"}
	match := func(s, term string) bool { return s == term }

	if got := Filter(list, "", match); len(got) != 3 {
		t.Fatalf("blank term should match everything, got %v", got)
	}
	if got := Filter(list, "   ", match); len(got) != 3 {
		t.Fatalf("whitespace term should match everything, got %v", got)
	}
	if got := Filter(list, "b", match); len(got) != 1 || got[0] != "b" {
		t.Fatalf("filtered = %v", got)
	}
}

func TestRecordMatcher(t *testing.T) {
	match := RecordMatcher("victimName", "cpf", "rg")
	record := form.Record{
		"victimName": "Maria da Silva",
		"cpf":        "12345678900",
		"rg":         "9876543",
	}

	cases := []struct {
		name string
		term string
		want bool
	}{
		{"name case-insensitive", "maria", true},
		{"name partial", "Silva", true},
		{"cpf substring", "345678", true},
		{"rg substring", "98765", true},
		{"no match", "João", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := match(record, tc.term); got != tc.want {
				t.Fatalf("match(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestRecordMatcherMissingFields(t *testing.T) {
	match := RecordMatcher("victimName", "cpf")
	if match(form.Record{}, "maria") {
		t.Fatal("empty record should not match")
	}
}
