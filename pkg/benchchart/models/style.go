package models

import "image/color"

// Symbol is the marker drawn at every data point of a series.
type Symbol int

const (
	SymbolTriangle Symbol = iota
	SymbolCircle
	SymbolSquare
	SymbolEllipse
	SymbolDiamond
	SymbolFlippedTriangle
	SymbolRectangle
)

// Style holds the presentation of one series kind.
type Style struct {
	// Color is the line, marker and band color.
	Color color.RGBA
	// Symbol is the point marker.
	Symbol Symbol
}

// Styles maps each series kind to its style.
type Styles map[SeriesKind]Style

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Flat:           {Color: rgb(10, 60, 10), Symbol: SymbolTriangle},
		FlatCached:     {Color: rgb(80, 200, 20), Symbol: SymbolCircle},
		FlatCold:       {Color: rgb(20, 100, 220), Symbol: SymbolSquare},
		PooledPointer:  {Color: rgb(180, 20, 10), Symbol: SymbolEllipse},
		NaivePointer:   {Color: rgb(250, 120, 120), Symbol: SymbolDiamond},
		PooledMultiway: {Color: rgb(130, 10, 150), Symbol: SymbolFlippedTriangle},
		NaiveMultiway:  {Color: rgb(250, 20, 250), Symbol: SymbolRectangle},
	}
}

// Lookup returns the style of k or an UnknownSeriesNameError.
func (s Styles) Lookup(k SeriesKind) (Style, error) {
	st, ok := s[k]
	if !ok {
		return Style{}, &UnknownSeriesNameError{Name: k.String()}
	}
	return st, nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
