// Package models defines data structures for benchmark chart generation.
package models

// SeriesKind identifies one of the measured data structure variants.
type SeriesKind int

const (
	Flat SeriesKind = iota
	FlatCached
	FlatCold
	PooledPointer
	NaivePointer
	PooledMultiway
	NaiveMultiway
)

// SeriesPerBlock is the number of series rows following each header row.
const SeriesPerBlock = 7

var seriesNames = [...]string{
	Flat:           "Flat",
	FlatCached:     "Flat cached",
	FlatCold:       "Flat cold",
	PooledPointer:  "Pooled Pointer",
	NaivePointer:   "Naive Pointer",
	PooledMultiway: "Pooled Multiway",
	NaiveMultiway:  "Naive Multiway",
}

// AllKinds returns every known series kind in canonical order.
func AllKinds() []SeriesKind {
	return []SeriesKind{Flat, FlatCached, FlatCold, PooledPointer, NaivePointer, PooledMultiway, NaiveMultiway}
}

func (k SeriesKind) String() string {
	if k < 0 || int(k) >= len(seriesNames) {
		return "unknown"
	}
	return seriesNames[k]
}

// ParseSeriesKind maps a display name to its kind.
func ParseSeriesKind(name string) (SeriesKind, error) {
	for i, n := range seriesNames {
		if n == name {
			return SeriesKind(i), nil
		}
	}
	return 0, &UnknownSeriesNameError{Name: name}
}

// KindSet is a set of series kinds.
type KindSet map[SeriesKind]struct{}

// NewKindSet builds a set from the given kinds.
func NewKindSet(kinds ...SeriesKind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set. A nil set contains nothing.
func (s KindSet) Has(k SeriesKind) bool {
	_, ok := s[k]
	return ok
}

// Series is one named sequence of measurements aligned to the block headers.
type Series struct {
	// Kind identifies the series and selects its style.
	Kind SeriesKind
	// Values holds the representative measurement per header.
	Values []float64
	// Min is the lower band per header (nil when the input has no bands).
	Min []float64
	// Max is the upper band per header (nil when the input has no bands).
	Max []float64
}

// HasBands reports whether both band sequences are present.
func (s Series) HasBands() bool {
	return s.Min != nil && s.Max != nil
}

// Clone returns a deep copy of the series.
func (s Series) Clone() Series {
	return Series{
		Kind:   s.Kind,
		Values: cloneFloats(s.Values),
		Min:    cloneFloats(s.Min),
		Max:    cloneFloats(s.Max),
	}
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
