package models

import "strconv"

// CellRef addresses one value of a series list. A negative Row counts from the end.
type CellRef struct {
	Row    int
	Column int
}

// ChartSpec is the self-contained input of one rendered chart.
type ChartSpec struct {
	// Dataset is the block name the chart belongs to.
	Dataset string
	// Title is the display title including any variant suffix.
	Title string
	// Headers are the x-axis problem sizes.
	Headers []int
	// Series are the candidate series, in block order.
	Series []Series
	// DrawExclude lists series that are not drawn.
	DrawExclude KindSet
	// MaxExclude lists series that do not contribute to the y maximum.
	MaxExclude KindSet
	// Normalize divides every value by its header.
	Normalize bool
	// Bands draws min/max envelopes and scales to the max band.
	Bands bool
	// PinnedMax, when set, takes the y maximum from a single value.
	PinnedMax *CellRef
}

// AxisScale is the derived mapping of a chart's data to its axes.
type AxisScale struct {
	// LogMin is log10 of the first header.
	LogMin float64
	// LogDelta is log10(last header) - LogMin.
	LogDelta float64
	// Positions holds the [0,1] x position of every header.
	Positions []float64
	// Step is the y tick increment.
	Step float64
	// Ticks is the number of y ticks including zero.
	Ticks int
	// Digits is the number of decimals in y tick labels.
	Digits int
	// Max is the y-axis ceiling, Step*(Ticks-1).
	Max float64
}

// TickValue returns the value of the i-th y tick.
func (a AxisScale) TickValue(i int) float64 {
	v := a.Step * float64(i)
	if a.Step >= 1 {
		v = float64(int64(v))
	}
	return v
}

// TickLabel formats the i-th y tick.
func (a AxisScale) TickLabel(i int) string {
	return strconv.FormatFloat(a.TickValue(i), 'f', a.Digits, 64)
}
