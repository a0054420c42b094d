// Package transform shapes series data before scaling: normalization,
// filtering and maximum computation. All functions return fresh slices.
package transform

import (
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Normalize divides every value (and band value) by the header of its column.
func Normalize(headers []int, series []models.Series) []models.Series {
	out := make([]models.Series, len(series))
	for i, s := range series {
		out[i] = models.Series{
			Kind:   s.Kind,
			Values: perUnit(headers, s.Values),
			Min:    perUnit(headers, s.Min),
			Max:    perUnit(headers, s.Max),
		}
	}
	return out
}

func perUnit(headers []int, values []float64) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(values))
	for col, v := range values {
		out[col] = v / float64(headers[col])
	}
	return out
}

// FilterOut removes every series of the given kind, keeping the order of the rest.
func FilterOut(kind models.SeriesKind, series []models.Series) []models.Series {
	return Without(series, models.NewKindSet(kind))
}

// Without removes every series whose kind is in exclude.
func Without(series []models.Series, exclude models.KindSet) []models.Series {
	out := make([]models.Series, 0, len(series))
	for _, s := range series {
		if exclude.Has(s.Kind) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// ComputeMax returns the largest value of the series not in exclude, or 0.
// With bands set, series carrying a max band contribute that band instead.
func ComputeMax(series []models.Series, exclude models.KindSet, bands bool) float64 {
	result := 0.0
	for _, s := range series {
		if exclude.Has(s.Kind) {
			continue
		}
		values := s.Values
		if bands && s.Max != nil {
			values = s.Max
		}
		for _, v := range values {
			if v > result {
				result = v
			}
		}
	}
	return result
}

// Pick returns the value at ref, or 0 when ref is out of range.
func Pick(series []models.Series, ref models.CellRef) float64 {
	row := ref.Row
	if row < 0 {
		row += len(series)
	}
	if row < 0 || row >= len(series) {
		return 0
	}
	values := series[row].Values
	if ref.Column < 0 || ref.Column >= len(values) {
		return 0
	}
	return values[ref.Column]
}
