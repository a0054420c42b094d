package transform

import (
	"testing"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

func sampleSeries() []models.Series {
	return []models.Series{
		{Kind: models.Flat, Values: []float64{10, 200, 3000}},
		{Kind: models.FlatCold, Values: []float64{20, 400, 9000}},
		{Kind: models.NaivePointer, Values: []float64{30, 300, 4000}, Min: []float64{25, 250, 3500}, Max: []float64{35, 350, 9500}},
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNormalize(t *testing.T) {
	headers := []int{10, 100, 1000}
	out := Normalize(headers, sampleSeries())

	if !equalFloats(out[0].Values, []float64{1, 2, 3}) {
		t.Errorf("Flat normalized = %v, expected [1 2 3]", out[0].Values)
	}
	if !equalFloats(out[2].Min, []float64{2.5, 2.5, 3.5}) {
		t.Errorf("Naive Pointer min normalized = %v", out[2].Min)
	}
	if out[0].Min != nil {
		t.Errorf("Expected no band on Flat, got %v", out[0].Min)
	}

	// the input is untouched
	if sampleSeries()[0].Values[1] != 200 {
		t.Errorf("Normalize modified its input")
	}
}

func TestNormalizeIdempotentOnUnitHeaders(t *testing.T) {
	in := sampleSeries()
	out := Normalize([]int{1, 1, 1}, in)
	for i := range in {
		if !equalFloats(in[i].Values, out[i].Values) || !equalFloats(in[i].Max, out[i].Max) {
			t.Errorf("series %d changed: %v -> %v", i, in[i].Values, out[i].Values)
		}
	}
}

func TestFilterOut(t *testing.T) {
	in := sampleSeries()

	out := FilterOut(models.FlatCold, in)
	if len(out) != len(in)-1 {
		t.Fatalf("Expected %d series, got %d", len(in)-1, len(out))
	}
	if out[0].Kind != models.Flat || out[1].Kind != models.NaivePointer {
		t.Errorf("order not preserved: %v, %v", out[0].Kind, out[1].Kind)
	}

	out = FilterOut(models.PooledMultiway, in)
	if len(out) != len(in) {
		t.Fatalf("Expected %d series, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Kind != in[i].Kind || !equalFloats(out[i].Values, in[i].Values) {
			t.Errorf("series %d changed", i)
		}
	}
	out[0].Values[0] = -1
	if in[0].Values[0] == -1 {
		t.Errorf("FilterOut returned shared slices")
	}
}

func TestComputeMax(t *testing.T) {
	series := sampleSeries()

	tests := []struct {
		name     string
		exclude  models.KindSet
		bands    bool
		expected float64
	}{
		{"all", nil, false, 9000},
		{"without cold", models.NewKindSet(models.FlatCold), false, 4000},
		{"bands", models.NewKindSet(models.FlatCold), true, 9500},
		{"everything excluded", models.NewKindSet(models.Flat, models.FlatCold, models.NaivePointer), false, 0},
	}

	for _, tt := range tests {
		if got := ComputeMax(series, tt.exclude, tt.bands); got != tt.expected {
			t.Errorf("%s: ComputeMax = %v, expected %v", tt.name, got, tt.expected)
		}
	}

	negative := []models.Series{{Kind: models.Flat, Values: []float64{-1, 0}}}
	if got := ComputeMax(negative, nil, false); got != 0 {
		t.Errorf("ComputeMax of non-positive values = %v, expected 0", got)
	}
}

func TestPick(t *testing.T) {
	series := sampleSeries()
	tests := []struct {
		ref      models.CellRef
		expected float64
	}{
		{models.CellRef{Row: -1, Column: 1}, 300},
		{models.CellRef{Row: 0, Column: 2}, 3000},
		{models.CellRef{Row: 5, Column: 0}, 0},
		{models.CellRef{Row: 0, Column: 9}, 0},
	}
	for _, tt := range tests {
		if got := Pick(series, tt.ref); got != tt.expected {
			t.Errorf("Pick(%+v) = %v, expected %v", tt.ref, got, tt.expected)
		}
	}
}

func TestShape(t *testing.T) {
	headers := []int{10, 100, 1000}

	// drawn but not scaled
	s := Shape(models.ChartSpec{
		Title:      "Add",
		Headers:    headers,
		Series:     sampleSeries(),
		MaxExclude: models.NewKindSet(models.FlatCold),
	})
	if len(s.Series) != 3 || s.Max != 4000 {
		t.Errorf("max exclusion: %d series, max %v", len(s.Series), s.Max)
	}
	if s.Series[2].Max != nil {
		t.Errorf("Expected bands dropped without band mode")
	}

	// scaled but not drawn
	s = Shape(models.ChartSpec{
		Headers:     headers,
		Series:      sampleSeries(),
		DrawExclude: models.NewKindSet(models.FlatCold),
	})
	if len(s.Series) != 2 || s.Max != 9000 {
		t.Errorf("draw exclusion: %d series, max %v", len(s.Series), s.Max)
	}

	s = Shape(models.ChartSpec{
		Headers:   headers,
		Series:    sampleSeries(),
		Normalize: true,
		PinnedMax: &models.CellRef{Row: -1, Column: 1},
	})
	if s.Max != 3 {
		t.Errorf("pinned normalized max = %v, expected 3", s.Max)
	}

	s = Shape(models.ChartSpec{Headers: headers, Series: sampleSeries(), Bands: true})
	if s.Max != 9500 || s.Series[2].Max == nil {
		t.Errorf("band mode: max %v, bands %v", s.Max, s.Series[2].Max)
	}
}
