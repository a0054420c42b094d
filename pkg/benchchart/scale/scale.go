// Package scale computes the axis mapping of benchmark charts.
package scale

import (
	"fmt"
	"math"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// TargetTicks is the initial number of y ticks.
const TargetTicks = 8

// Undershoot is the fraction of the maximum the y axis must cover.
const Undershoot = 0.98

// Granularity is one rung of the nice-step ladder.
type Granularity struct {
	// Above is the exclusive lower bound of raw steps using this rung.
	Above float64
	// Unit is the rounding unit.
	Unit float64
	// Digits is the number of decimals of tick labels.
	Digits int
}

// Ladder is ordered from coarsest to finest; the last rung catches everything.
var Ladder = []Granularity{
	{Above: 200, Unit: 200},
	{Above: 100, Unit: 100},
	{Above: 50, Unit: 50},
	{Above: 10, Unit: 10},
	{Above: 1, Unit: 1},
	{Above: 0.1, Unit: 0.1, Digits: 1},
	{Above: 0.01, Unit: 0.01, Digits: 2},
	{Above: math.Inf(-1), Unit: 0.001, Digits: 3},
}

// roundUp rounds raw up to a multiple of g.Unit. Fractional units scale up
// by the inverse first so 0.3 stays 0.3.
func (g Granularity) roundUp(raw float64) float64 {
	if g.Unit >= 1 {
		return math.Ceil(raw/g.Unit) * g.Unit
	}
	k := math.Round(1 / g.Unit)
	return math.Ceil(raw*k) / k
}

// LogPositions maps every header to [0,1] on a log10 scale.
func LogPositions(headers []int) (positions []float64, logMin, logDelta float64, err error) {
	if len(headers) < 2 {
		return nil, 0, 0, &models.DegenerateAxisError{Reason: fmt.Sprintf("%d header(s), need at least 2", len(headers))}
	}
	first, last := headers[0], headers[len(headers)-1]
	if first <= 0 || last <= 0 {
		return nil, 0, 0, &models.DegenerateAxisError{Reason: "headers must be positive"}
	}

	logMin = math.Log10(float64(first))
	logDelta = math.Log10(float64(last)) - logMin
	if logDelta == 0 {
		return nil, 0, 0, &models.DegenerateAxisError{Reason: fmt.Sprintf("first and last header are both %d", first)}
	}

	positions = make([]float64, len(headers))
	for i, h := range headers {
		positions[i] = (math.Log10(float64(h)) - logMin) / logDelta
	}
	return positions, logMin, logDelta, nil
}

// NiceStep derives the y tick step, tick count and label digits for maximum m.
func NiceStep(m float64) (step float64, ticks int, digits int, err error) {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, 0, 0, &models.DegenerateAxisError{Reason: fmt.Sprintf("maximum value %v", m)}
	}

	ticks = TargetTicks
	raw := m / float64(ticks)
	for _, g := range Ladder {
		if raw > g.Above {
			step = g.roundUp(raw)
			digits = g.Digits
			break
		}
	}

	for ticks > 1 && step*float64(ticks-1) > m {
		ticks--
	}
	if step*float64(ticks-1) < m*Undershoot {
		ticks++
	}
	return step, ticks, digits, nil
}

// Compute derives the full axis scale for the given headers and maximum.
func Compute(headers []int, m float64) (models.AxisScale, error) {
	positions, logMin, logDelta, err := LogPositions(headers)
	if err != nil {
		return models.AxisScale{}, err
	}
	step, ticks, digits, err := NiceStep(m)
	if err != nil {
		return models.AxisScale{}, err
	}
	return models.AxisScale{
		LogMin:    logMin,
		LogDelta:  logDelta,
		Positions: positions,
		Step:      step,
		Ticks:     ticks,
		Digits:    digits,
		Max:       step * float64(ticks-1),
	}, nil
}
