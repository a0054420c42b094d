package transform

import (
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Shaped is a chart spec with its transformations applied, ready to be scaled.
type Shaped struct {
	// Title is the display title.
	Title string
	// Headers are the x-axis problem sizes.
	Headers []int
	// Series are the series to draw.
	Series []models.Series
	// Max is the value the y axis must reach.
	Max float64
	// Normalized reports whether values are per header unit.
	Normalized bool
	// Bands reports whether min/max envelopes are drawn.
	Bands bool
}

// Shape applies normalization, drawing exclusion and the max rules of spec.
// Bands are only kept when spec.Bands is set.
func Shape(spec models.ChartSpec) Shaped {
	series := spec.Series
	if spec.Normalize {
		series = Normalize(spec.Headers, series)
	}

	var max float64
	if spec.PinnedMax != nil {
		max = Pick(series, *spec.PinnedMax)
	} else {
		max = ComputeMax(series, spec.MaxExclude, spec.Bands)
	}

	drawn := Without(series, spec.DrawExclude)
	if !spec.Bands {
		for i := range drawn {
			drawn[i].Min, drawn[i].Max = nil, nil
		}
	}

	return Shaped{
		Title:      spec.Title,
		Headers:    spec.Headers,
		Series:     drawn,
		Max:        max,
		Normalized: spec.Normalize,
		Bands:      spec.Bands,
	}
}
