package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountBuckets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/victims-per-month" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "2025-01", "count": 4},
			{"_id": "2025-02", "count": 7},
		})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).Reports().VictimsPerMonth(context.Background())
	if err != nil {
		t.Fatalf("VictimsPerMonth: %v", err)
	}
	want := []CountBucket{{Label: "2025-01", Count: 4}, {Label: "2025-02", Count: 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestAvgChildrenDefaultsToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"victimsAvg": 1.5})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).Reports().AvgChildren(context.Background())
	if err != nil {
		t.Fatalf("AvgChildren: %v", err)
	}
	if got.Victims != 1.5 || got.Authors != 0 {
		t.Fatalf("avg = %+v", got)
	}
}

func TestAgeDistributionMergesByRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"victims": []map[string]any{
				{"label": "18-25", "count": 3},
				{"label": "26-35", "count": 5},
			},
			"authors": []map[string]any{
				{"label": "26-35", "count": 2},
				{"label": "36-45", "count": 4},
			},
		})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).Reports().AgeDistribution(context.Background())
	if err != nil {
		t.Fatalf("AgeDistribution: %v", err)
	}
	want := []AgeBucket{
		{Range: "18-25", Victims: 3, Authors: 0},
		{Range: "26-35", Victims: 5, Authors: 2},
		{Range: "36-45", Victims: 0, Authors: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("age distribution mismatch (-want +got):\n%s", diff)
	}
}
