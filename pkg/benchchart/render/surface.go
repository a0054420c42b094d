package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// borderOffset separates the axis lines from the plot area.
	borderOffset = 5.0
	// whiskerLength is the length of axis tick marks.
	whiskerLength = 5.0
	// bandAlpha is the opacity of min/max envelopes.
	bandAlpha = 48
)

var (
	textColor   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	gridColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	borderColor = color.Black
)

// Surface draws charts with gg onto a single reusable canvas.
type Surface struct {
	layout Layout
	dc     *gg.Context
	title  font.Face
	label  font.Face
	legend font.Face
}

// NewSurface acquires the canvas and loads the font faces.
func NewSurface(layout Layout) (*Surface, error) {
	s := &Surface{
		layout: layout,
		dc:     gg.NewContext(layout.Width, layout.Height),
	}
	var err error
	if s.title, err = loadFace(layout.FontPath, layout.TitleSize); err != nil {
		return nil, err
	}
	if s.label, err = loadFace(layout.FontPath, layout.LabelSize); err != nil {
		return nil, err
	}
	if s.legend, err = loadFace(layout.FontPath, layout.LegendSize); err != nil {
		return nil, err
	}
	return s, nil
}

func loadFace(path string, size float64) (font.Face, error) {
	if path != "" {
		face, err := gg.LoadFontFace(path, size)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", path, err)
		}
		return face, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// Close releases the canvas.
func (s *Surface) Close() error {
	s.dc = nil
	return nil
}

// Draw clears the canvas, paints the frame and encodes it as PNG.
func (s *Surface) Draw(f *Frame, w io.Writer) error {
	if s.dc == nil {
		return fmt.Errorf("surface is closed")
	}
	s.paint(f)
	return s.dc.EncodePNG(w)
}

func (s *Surface) paint(f *Frame) {
	dc := s.dc
	left, top, width, height := s.layout.plotArea()
	right, bottom := left+width, top+height

	xOf := func(i int) float64 { return left + f.Scale.Positions[i]*width }
	yOf := func(v float64) float64 { return (1-v/f.Scale.Max)*height + top }

	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	// y axis
	dc.SetFontFace(s.label)
	dc.SetColor(textColor)
	drawRotated(dc, f.YLabel(), 7+dc.FontHeight()/2, top+height/2)

	axisX := left - borderOffset
	for i := 0; i < f.Scale.Ticks; i++ {
		y := yOf(f.Scale.TickValue(i))

		dc.SetColor(gridColor)
		dc.SetLineWidth(1)
		dc.DrawLine(axisX, y, right, y)
		dc.Stroke()

		dc.SetColor(borderColor)
		dc.DrawLine(axisX-whiskerLength, y, axisX, y)
		dc.Stroke()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(f.Scale.TickLabel(i), axisX-whiskerLength-3, y, 1, 0.5)
	}

	// x axis
	dc.DrawStringAnchored(f.XLabel(), left+width/2, float64(s.layout.Height)-10, 0.5, 0)
	axisY := bottom + borderOffset
	for i, h := range f.Headers {
		x := xOf(i)
		dc.SetColor(borderColor)
		dc.DrawLine(x, axisY, x, axisY+whiskerLength)
		dc.Stroke()

		label := strconv.Itoa(h)
		lw, _ := dc.MeasureString(label)
		dc.SetColor(textColor)
		drawRotated(dc, label, x, axisY+whiskerLength+3+lw/2)
	}

	// border
	dc.SetColor(borderColor)
	dc.MoveTo(left-borderOffset, top-borderOffset)
	dc.LineTo(left-borderOffset, bottom+borderOffset)
	dc.LineTo(right+borderOffset, bottom+borderOffset)
	dc.Stroke()

	markerRadius := float64(s.layout.Height) * 0.015 / 2

	if f.Bands {
		for _, ser := range f.Series {
			if !ser.HasBands() {
				continue
			}
			s.drawBand(ser, f.Styles[ser.Kind].Color, xOf, yOf, markerRadius)
		}
	}

	for _, ser := range f.Series {
		st := f.Styles[ser.Kind]
		dc.SetColor(st.Color)
		dc.SetLineWidth(2.5)
		for i, v := range ser.Values {
			if i == 0 {
				dc.MoveTo(xOf(i), yOf(v))
			} else {
				dc.LineTo(xOf(i), yOf(v))
			}
		}
		dc.Stroke()
		for i, v := range ser.Values {
			drawSymbol(dc, st.Symbol, xOf(i), yOf(v), markerRadius)
		}
	}

	// title, painted over anything that overshoots the top
	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, float64(s.layout.Width), top-10)
	dc.Fill()
	dc.SetFontFace(s.title)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(f.Title, float64(s.layout.Width)/2, 5, 0.5, 1)

	// legend
	dc.SetFontFace(s.legend)
	centerY := top + height/2
	for i, ser := range f.Series {
		st := f.Styles[ser.Kind]
		x := right + 40
		y := centerY - 15*float64(len(f.Series)) + 30*float64(i)

		dc.SetColor(textColor)
		dc.DrawStringAnchored(ser.Kind.String(), x, y, 0, 0.5)

		dc.SetColor(st.Color)
		dc.SetLineWidth(3)
		dc.DrawLine(x-25, y, x-5, y)
		dc.Stroke()
		drawSymbol(dc, st.Symbol, x-15, y, markerRadius)
	}
}

// drawBand fills the min/max envelope and marks each column with a capped whisker.
func (s *Surface) drawBand(ser models.Series, c color.RGBA, xOf func(int) float64, yOf func(float64) float64, capWidth float64) {
	dc := s.dc
	n := len(ser.Max)

	dc.SetColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: bandAlpha})
	dc.NewSubPath()
	for i := 0; i < n; i++ {
		dc.LineTo(xOf(i), yOf(ser.Max[i]))
	}
	for i := n - 1; i >= 0; i-- {
		dc.LineTo(xOf(i), yOf(ser.Min[i]))
	}
	dc.ClosePath()
	dc.Fill()

	dc.SetColor(c)
	dc.SetLineWidth(1)
	for i := 0; i < n; i++ {
		x, lo, hi := xOf(i), yOf(ser.Min[i]), yOf(ser.Max[i])
		dc.DrawLine(x, lo, x, hi)
		dc.DrawLine(x-capWidth, lo, x+capWidth, lo)
		dc.DrawLine(x-capWidth, hi, x+capWidth, hi)
		dc.Stroke()
	}
}

// drawRotated draws text turned 90 degrees counter-clockwise, centered on (x, y).
func drawRotated(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), x, y)
	dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	dc.Pop()
}

func drawSymbol(dc *gg.Context, sym models.Symbol, x, y, r float64) {
	switch sym {
	case models.SymbolTriangle:
		dc.DrawRegularPolygon(3, x, y, r, 0)
	case models.SymbolFlippedTriangle:
		dc.DrawRegularPolygon(3, x, y, r, math.Pi)
	case models.SymbolCircle:
		dc.DrawCircle(x, y, r)
	case models.SymbolSquare:
		dc.DrawRectangle(x-r, y-r, 2*r, 2*r)
	case models.SymbolEllipse:
		dc.DrawEllipse(x, y, r, r*0.6)
	case models.SymbolDiamond:
		dc.MoveTo(x, y-r)
		dc.LineTo(x+r, y)
		dc.LineTo(x, y+r)
		dc.LineTo(x-r, y)
		dc.ClosePath()
	case models.SymbolRectangle:
		dc.DrawRectangle(x-r, y-r*0.6, 2*r, 1.2*r)
	}
	dc.Fill()
}
