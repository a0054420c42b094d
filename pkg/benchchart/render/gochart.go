package render

import (
	"image/color"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartBackend renders frames as go-chart line charts.
// The x axis runs over the [0,1] log positions with the headers as tick labels.
type ChartBackend struct {
	layout Layout
}

// NewChartBackend creates a go-chart backend.
func NewChartBackend(layout Layout) *ChartBackend {
	return &ChartBackend{layout: layout}
}

// Close is a no-op; go-chart allocates a canvas per render.
func (b *ChartBackend) Close() error {
	return nil
}

func toDrawing(c color.RGBA, alpha uint8) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Draw renders f as PNG.
func (b *ChartBackend) Draw(f *Frame, w io.Writer) error {
	xTicks := make([]chart.Tick, len(f.Headers))
	for i, h := range f.Headers {
		xTicks[i] = chart.Tick{Value: f.Scale.Positions[i], Label: strconv.Itoa(h)}
	}
	yTicks := make([]chart.Tick, f.Scale.Ticks)
	for i := range yTicks {
		yTicks[i] = chart.Tick{Value: f.Scale.TickValue(i), Label: f.Scale.TickLabel(i)}
	}

	series := []chart.Series{}
	for _, s := range f.Series {
		st := f.Styles[s.Kind]
		if f.Bands && s.HasBands() {
			band := chart.Style{
				StrokeColor:     toDrawing(st.Color, 120),
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 3},
			}
			series = append(series,
				chart.ContinuousSeries{Name: s.Kind.String() + " min", XValues: f.Scale.Positions, YValues: s.Min, Style: band},
				chart.ContinuousSeries{Name: s.Kind.String() + " max", XValues: f.Scale.Positions, YValues: s.Max, Style: band},
			)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Kind.String(),
			XValues: f.Scale.Positions,
			YValues: s.Values,
			Style: chart.Style{
				StrokeColor: toDrawing(st.Color, 255),
				StrokeWidth: 2.5,
				DotColor:    toDrawing(st.Color, 255),
				DotWidth:    4,
			},
		})
	}

	grid := chart.Style{StrokeColor: toDrawing(gridColor, 255), StrokeWidth: 1}
	ch := chart.Chart{
		Title:  f.Title,
		Width:  b.layout.Width,
		Height: b.layout.Height,
		Background: chart.Style{Padding: chart.Box{
			Top:    b.layout.MarginTop / 2,
			Left:   b.layout.MarginLeft / 4,
			Right:  b.layout.MarginLeft / 4,
			Bottom: b.layout.MarginBottom,
		}},
		XAxis: chart.XAxis{
			Name:  f.XLabel(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:           f.YLabel(),
			Range:          &chart.ContinuousRange{Min: 0, Max: f.Scale.Max},
			Ticks:          yTicks,
			GridMajorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}
