// Package plan holds the per-dataset chart policy: which variants of a
// dataset are rendered, in which order, with which filters.
package plan

import (
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Variant is one rendering configuration of a dataset.
type Variant struct {
	// Suffix is appended to the dataset name to form the title.
	Suffix string
	// DrawExclude lists series that are not drawn.
	DrawExclude []models.SeriesKind
	// MaxExclude lists series ignored when computing the y maximum.
	MaxExclude []models.SeriesKind
	// Normalize divides values by their header.
	Normalize bool
	// Bands draws min/max envelopes and scales to the max band.
	Bands bool
	// PinnedMax takes the y maximum from one value instead.
	PinnedMax *models.CellRef
	// SkipFor lists dataset names this variant is not rendered for.
	SkipFor []string
}

func (v Variant) skips(name string) bool {
	for _, n := range v.SkipFor {
		if n == name {
			return true
		}
	}
	return false
}

// Branch maps dataset names to their variants.
type Branch struct {
	// Names are matched exactly.
	Names []string
	// Contains are matched as substrings.
	Contains []string
	// Variants are rendered in order.
	Variants []Variant
}

// Matches reports whether the branch applies to the dataset name.
func (b Branch) Matches(name string) bool {
	for _, n := range b.Names {
		if n == name {
			return true
		}
	}
	for _, c := range b.Contains {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

// Policy is an ordered branch table with a fallback.
type Policy struct {
	// Branches are tried in order; the first match wins.
	Branches []Branch
	// Default applies when no branch matches.
	Default []Variant
}

// Variants returns the variants rendered for the dataset name.
func (p Policy) Variants(name string) []Variant {
	candidates := p.Default
	for _, b := range p.Branches {
		if b.Matches(name) {
			candidates = b.Variants
			break
		}
	}

	out := make([]Variant, 0, len(candidates))
	for _, v := range candidates {
		if v.skips(name) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// For returns the policy of a schema. Auto falls back to V1.
func For(schema models.Schema) Policy {
	if schema == models.SchemaV2 {
		return V2
	}
	return V1
}

// Build enumerates the chart specs of a block, in rendering order.
func Build(b models.Block) []models.ChartSpec {
	variants := For(b.Schema).Variants(b.Name)
	specs := make([]models.ChartSpec, 0, len(variants))
	for _, v := range variants {
		specs = append(specs, models.ChartSpec{
			Dataset:     b.Name,
			Title:       b.Name + v.Suffix,
			Headers:     b.Headers,
			Series:      b.Series,
			DrawExclude: models.NewKindSet(v.DrawExclude...),
			MaxExclude:  models.NewKindSet(v.MaxExclude...),
			Normalize:   v.Normalize,
			Bands:       v.Bands,
			PinnedMax:   v.PinnedMax,
		})
	}
	return specs
}
