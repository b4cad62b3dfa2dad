package api

import (
	"context"
	"net/http"
)

// CountBucket is one aggregate row keyed by label: a month ("2025-03"), a
// violence type or a municipality, with its record count.
type CountBucket struct {
	Label string `json:"_id"`
	Count int    `json:"count"`
}

// AverageChildren pairs the victim and aggressor averages.
type AverageChildren struct {
	Victims float64 `json:"victimsAvg"`
	Authors float64 `json:"authorsAvg"`
}

// HousingIncomeBucket crosses housing condition with income range.
type HousingIncomeBucket struct {
	Housing string `json:"housing"`
	Income  string `json:"income"`
	Count   int    `json:"count"`
}

// AgeBucket joins both populations on an age-range label. Ranges present in
// only one population report zero for the other.
type AgeBucket struct {
	Range   string
	Victims int
	Authors int
}

type ageDistributionResponse struct {
	Victims []struct {
		Label string `json:"label"`
		Count int    `json:"count"`
	} `json:"victims"`
	Authors []struct {
		Label string `json:"label"`
		Count int    `json:"count"`
	} `json:"authors"`
}

// ReportService reads the dashboard aggregates. All numbers are computed
// server-side; this client only reshapes them for display.
type ReportService struct {
	client *Client
}

// Reports returns the dashboard aggregate surface.
func (c *Client) Reports() *ReportService {
	return &ReportService{client: c}
}

// VictimsPerMonth returns monthly victim counts, labels in "YYYY-MM" form.
func (s *ReportService) VictimsPerMonth(ctx context.Context) ([]CountBucket, error) {
	return s.buckets(ctx, "/reports/victims-per-month")
}

// ViolenceTypes returns the breakdown by reported violence type.
func (s *ReportService) ViolenceTypes(ctx context.Context) ([]CountBucket, error) {
	return s.buckets(ctx, "/reports/violence-types")
}

// AuthorsByMunicipality returns aggressor counts by municipality.
func (s *ReportService) AuthorsByMunicipality(ctx context.Context) ([]CountBucket, error) {
	return s.buckets(ctx, "/reports/authors-by-municipality")
}

func (s *ReportService) buckets(ctx context.Context, path string) ([]CountBucket, error) {
	var out []CountBucket
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvgChildren returns the average number of children per population,
// defaulting missing averages to zero.
func (s *ReportService) AvgChildren(ctx context.Context) (AverageChildren, error) {
	var out AverageChildren
	if err := s.client.do(ctx, http.MethodGet, "/reports/avg-children", nil, nil, &out); err != nil {
		return AverageChildren{}, err
	}
	return out, nil
}

// HousingIncome returns the housing-condition by income-range cross table.
func (s *ReportService) HousingIncome(ctx context.Context) ([]HousingIncomeBucket, error) {
	var out []HousingIncomeBucket
	if err := s.client.do(ctx, http.MethodGet, "/reports/housing-income", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AgeDistribution merges the per-population age histograms into one table
// keyed by range label, preserving first-seen label order (victims first).
func (s *ReportService) AgeDistribution(ctx context.Context) ([]AgeBucket, error) {
	var res ageDistributionResponse
	if err := s.client.do(ctx, http.MethodGet, "/reports/age-distribution", nil, nil, &res); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var merged []AgeBucket
	for _, row := range res.Victims {
		index[row.Label] = len(merged)
		merged = append(merged, AgeBucket{Range: row.Label, Victims: row.Count})
	}
	for _, row := range res.Authors {
		if i, ok := index[row.Label]; ok {
			merged[i].Authors = row.Count
			continue
		}
		index[row.Label] = len(merged)
		merged = append(merged, AgeBucket{Range: row.Label, Authors: row.Count})
	}
	return merged, nil
}
