package plan

import (
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Series families.
var (
	flats    = []models.SeriesKind{models.Flat, models.FlatCached, models.FlatCold}
	pointers = []models.SeriesKind{models.PooledPointer, models.NaivePointer}
	multiway = []models.SeriesKind{models.PooledMultiway, models.NaiveMultiway}
	noCache  = []models.SeriesKind{models.FlatCached, models.FlatCold}
	trimmed  = []models.SeriesKind{models.FlatCold, models.NaiveMultiway, models.PooledMultiway}
	zoomed   = []models.SeriesKind{models.FlatCold, models.NaivePointer, models.NaiveMultiway, models.PooledMultiway}
)

func kinds(groups ...[]models.SeriesKind) []models.SeriesKind {
	var out []models.SeriesKind
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// V1 is the policy of value-only tables.
var V1 = Policy{
	Branches: []Branch{
		{
			Names: []string{"Add", "Move", "Erase"},
			Variants: []Variant{
				{},
				{MaxExclude: []models.SeriesKind{models.FlatCold, models.NaiveMultiway, models.PooledMultiway}},
				{Suffix: " normalized", Normalize: true},
			},
		},
		{
			Names: []string{"Leaf travel"},
			Variants: []Variant{
				{},
				{MaxExclude: []models.SeriesKind{models.FlatCold}},
				{MaxExclude: []models.SeriesKind{models.FlatCold, models.Flat}},
				{Suffix: " normalized", Normalize: true},
				{Suffix: " normalized", Normalize: true, PinnedMax: &models.CellRef{Row: -1, Column: 1}},
			},
		},
		{
			Names: []string{"Find max depth"},
			Variants: []Variant{
				{DrawExclude: noCache, MaxExclude: noCache},
				{Suffix: ", flat only", DrawExclude: noCache, MaxExclude: kinds(noCache, pointers, multiway)},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: noCache, Normalize: true},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: kinds(noCache, pointers, multiway), Normalize: true},
			},
		},
		{
			Names: []string{"Find count"},
			Variants: []Variant{
				{DrawExclude: noCache, MaxExclude: noCache},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: noCache, Normalize: true},
			},
		},
		{
			Names: []string{"Nth Node"},
			Variants: []Variant{
				{DrawExclude: flats, MaxExclude: flats},
				{Suffix: " normalized", DrawExclude: flats, MaxExclude: flats, Normalize: true},
			},
		},
		{
			Names:    []string{"Find node"},
			Contains: []string{"Transform"},
			Variants: []Variant{
				{DrawExclude: noCache, MaxExclude: noCache},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: noCache, Normalize: true},
			},
		},
	},
	Default: []Variant{{}},
}

// V2 is the policy of tables carrying min/max bands.
var V2 = Policy{
	Branches: []Branch{
		{
			Names: []string{"Leaf travel"},
			Variants: []Variant{
				{Bands: true},
				{Suffix: " zoomed", MaxExclude: []models.SeriesKind{models.FlatCold}, Bands: true},
				{Suffix: " zoomed, no flat", MaxExclude: []models.SeriesKind{models.FlatCold, models.Flat}, Bands: true},
				{Suffix: " normalized", Normalize: true},
			},
		},
		{
			Names: []string{"Find max depth"},
			Variants: []Variant{
				{DrawExclude: noCache, MaxExclude: noCache, Bands: true},
				{Suffix: ", flat only", DrawExclude: noCache, MaxExclude: kinds(noCache, pointers, multiway), Bands: true},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: noCache, Normalize: true},
				{Suffix: " normalized, flat only", DrawExclude: noCache, MaxExclude: kinds(noCache, pointers, multiway), Normalize: true},
			},
		},
		{
			Names: []string{"Find count"},
			Variants: []Variant{
				{DrawExclude: noCache, MaxExclude: noCache, Bands: true},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: noCache, Normalize: true},
			},
		},
		{
			Names: []string{"Nth Node"},
			Variants: []Variant{
				{DrawExclude: flats, MaxExclude: flats, Bands: true},
				{Suffix: " normalized", DrawExclude: flats, MaxExclude: flats, Normalize: true},
			},
		},
		{
			Names:    []string{"Find node"},
			Contains: []string{"Transform"},
			Variants: []Variant{
				{DrawExclude: noCache, MaxExclude: noCache, Bands: true},
				{Suffix: " normalized", DrawExclude: noCache, MaxExclude: noCache, Normalize: true},
			},
		},
	},
	Default: []Variant{
		{Bands: true},
		{Suffix: " trimmed", MaxExclude: trimmed, Bands: true},
		{Suffix: " zoomed", MaxExclude: zoomed},
		{Suffix: " normalized", Normalize: true},
		{Suffix: " normalized zoomed", MaxExclude: zoomed, Normalize: true},
		{Suffix: " pointer trees", DrawExclude: kinds(flats, multiway), MaxExclude: kinds(flats, multiway), Bands: true},
		{Suffix: " multiway trees", DrawExclude: kinds(flats, pointers), MaxExclude: kinds(flats, pointers), Bands: true},
		{Suffix: " flat trees", DrawExclude: kinds(pointers, multiway), MaxExclude: kinds(pointers, multiway), Bands: true, SkipFor: []string{"Erase"}},
	},
}
