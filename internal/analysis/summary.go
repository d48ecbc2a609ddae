package analysis

import (
	"github.com/KaramelBytes/surveyscope/internal/dataset"
)

// Columns the reports single out by name.
const (
	ColumnEngagementStart = "engagement_started_EDT"
	ColumnProvince        = "Province"
	ColumnRelationship    = "Q1_Relationship_with_music"
	ColumnDiscovery       = "Q2_Discovering_music"
	ColumnAgeGroup        = "AgeGroup_Broad"
)

// ColumnCount pairs a column with a single count (responses or unique values).
type ColumnCount struct {
	Column string
	Count  int
}

// Sample is the first response of an open-ended column.
type Sample struct {
	Column    string
	Responses int
	Text      string
}

// Summary holds every statistic the reports render. Optional sections are nil
// when the dataset lacks the column they describe.
type Summary struct {
	Rows    int
	Headers []string
	Columns Columns

	Dates        *DateRange
	Province     *Distribution
	Relationship *Distribution
	Discovery    *Distribution
	AgeGroup     *Distribution

	// OpenEnded counts responses per open-ended column, in header order.
	OpenEnded []ColumnCount
	// Demographics counts unique values per demographic column.
	Demographics []ColumnCount
	Samples      []Sample
	Missing      []MissingStat
}

// Summarize runs classification and aggregation over ds.
func Summarize(ds dataset.Dataset, cls *Classifier) (*Summary, error) {
	if cls == nil {
		cls = NewClassifier(nil)
	}
	s := &Summary{
		Rows:    ds.Len(),
		Headers: ds.Headers(),
	}
	s.Columns = cls.Partition(s.Headers)

	if dataset.Has(ds, ColumnEngagementStart) {
		dr, err := ParseDateRange(ds, ColumnEngagementStart)
		if err != nil {
			return nil, err
		}
		s.Dates = dr
	}
	for _, t := range []struct {
		name string
		dst  **Distribution
	}{
		{ColumnProvince, &s.Province},
		{ColumnRelationship, &s.Relationship},
		{ColumnDiscovery, &s.Discovery},
		{ColumnAgeGroup, &s.AgeGroup},
	} {
		if !dataset.Has(ds, t.name) {
			continue
		}
		d, err := ValueCounts(ds, t.name)
		if err != nil {
			return nil, err
		}
		*t.dst = d
	}

	for _, col := range s.Columns.OpenEnded {
		d, err := ValueCounts(ds, col)
		if err != nil {
			return nil, err
		}
		s.OpenEnded = append(s.OpenEnded, ColumnCount{Column: col, Count: d.Present()})
		s.Samples = append(s.Samples, Sample{Column: col, Responses: d.Present(), Text: d.First})
	}
	for _, col := range s.Columns.Demographic {
		d, err := ValueCounts(ds, col)
		if err != nil {
			return nil, err
		}
		s.Demographics = append(s.Demographics, ColumnCount{Column: col, Count: d.Unique()})
	}
	s.Missing = MissingSummary(ds)
	return s, nil
}
