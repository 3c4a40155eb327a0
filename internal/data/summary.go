package data

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// FieldSummary describes the spread of one numeric field.
type FieldSummary struct {
	Field          string
	Min, Mean, Max float64
	StdDev         float64
}

func (s FieldSummary) String() string {
	return fmt.Sprintf("%-10s min=%-8.4g mean=%-8.4g max=%-8.4g sd=%.4g", s.Field, s.Min, s.Mean, s.Max, s.StdDev)
}

// Summarize computes per-field statistics over the dataset's numeric
// columns, in column order.
func (d *Dataset) Summarize() []FieldSummary {
	if d.Len() == 0 {
		return nil
	}
	fields := []struct {
		name string
		get  func(Record) float64
	}{
		{"gdp", func(r Record) float64 { return r.GDP }},
		{"population", func(r Record) float64 { return r.Population }},
		{"ecc", func(r Record) float64 { return r.ECC }},
		{"ec", func(r Record) float64 { return r.EC }},
	}
	out := make([]FieldSummary, 0, len(fields))
	xs := make([]float64, len(d.Records))
	for _, f := range fields {
		for i, r := range d.Records {
			xs[i] = f.get(r)
		}
		s := stats.Sample{Xs: xs}
		lo, hi := s.Bounds()
		sd := 0.0
		if len(xs) > 1 {
			sd = s.StdDev()
		}
		out = append(out, FieldSummary{Field: f.name, Min: lo, Mean: s.Mean(), Max: hi, StdDev: sd})
	}
	return out
}
