// Package render draws shaped charts and persists them as images.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Backend names.
const (
	BackendGG      = "gg"
	BackendGoChart = "gochart"
)

// Frame is everything a backend needs to draw one chart.
type Frame struct {
	// Title is the display title.
	Title string
	// Headers label the x whiskers.
	Headers []int
	// Series are drawn in order.
	Series []models.Series
	// Scale maps values to the axes.
	Scale models.AxisScale
	// Bands draws min/max envelopes of series that carry them.
	Bands bool
	// Styles resolves series colors and symbols.
	Styles models.Styles
}

// YLabel returns the y-axis caption.
func (f *Frame) YLabel() string {
	if strings.Contains(f.Title, "normaliz") {
		return "duration per node (µs/node)"
	}
	return "duration (µs)"
}

// XLabel returns the x-axis caption.
func (f *Frame) XLabel() string {
	return "number of nodes"
}

// Backend draws a frame and encodes it as PNG.
type Backend interface {
	Draw(f *Frame, w io.Writer) error
	Close() error
}

// Layout holds the image geometry and font sizes.
type Layout struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	MarginLeft   int     `yaml:"margin_left"`
	MarginTop    int     `yaml:"margin_top"`
	MarginRight  int     `yaml:"margin_right"`
	MarginBottom int     `yaml:"margin_bottom"`
	FontPath     string  `yaml:"font_path"` // TTF file; empty selects Go Regular
	TitleSize    float64 `yaml:"title_size"`
	LabelSize    float64 `yaml:"label_size"`
	LegendSize   float64 `yaml:"legend_size"`
}

// DefaultLayout returns the 1440x1080 layout with room for the legend on the right.
func DefaultLayout() Layout {
	return Layout{
		Width:        1440,
		Height:       1080,
		MarginLeft:   100,
		MarginTop:    100,
		MarginRight:  280,
		MarginBottom: 100,
		TitleSize:    26,
		LabelSize:    18,
		LegendSize:   30,
	}
}

// plotArea returns the chart rectangle inside the margins.
func (l Layout) plotArea() (left, top, width, height float64) {
	return float64(l.MarginLeft), float64(l.MarginTop),
		float64(l.Width - l.MarginLeft - l.MarginRight),
		float64(l.Height - l.MarginTop - l.MarginBottom)
}

// Validate checks the plot area is not empty.
func (l Layout) Validate() error {
	if l.Width-l.MarginLeft-l.MarginRight <= 0 || l.Height-l.MarginTop-l.MarginBottom <= 0 {
		return fmt.Errorf("layout %dx%d leaves no room inside the margins", l.Width, l.Height)
	}
	return nil
}

// NewBackend creates the named backend.
func NewBackend(name string, layout Layout) (Backend, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	switch name {
	case BackendGG, "":
		return NewSurface(layout)
	case BackendGoChart:
		return NewChartBackend(layout), nil
	default:
		return nil, fmt.Errorf("invalid backend: %s (must be %s or %s)", name, BackendGG, BackendGoChart)
	}
}
