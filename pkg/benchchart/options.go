// Package benchchart renders benchmark comparison charts from tabular timing data.
package benchchart

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render"
)

// Options configures chart generation.
type Options struct {
	// Schema selects the series row layout (auto, v1, v2).
	Schema models.Schema
	// Backend names the renderer (gg, gochart).
	Backend string
	// OutputDir receives the images. Empty means the working directory.
	OutputDir string
	// PadCounter zero-pads the image counter to two digits.
	// If nil, defaults to true for band (v2) tables, false otherwise.
	PadCounter *bool
	// DryRun plans and scales every chart without writing images.
	DryRun bool
	// Layout is the image geometry.
	Layout render.Layout
	// Logger receives progress messages. Nil selects the standard logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Schema:  models.SchemaAuto,
		Backend: render.BackendGG,
		Layout:  render.DefaultLayout(),
	}
}

// CounterWidth returns the zero-padding width of the image counter.
func (o Options) CounterWidth(schema models.Schema) int {
	pad := schema == models.SchemaV2
	if o.PadCounter != nil {
		pad = *o.PadCounter
	}
	if pad {
		return 2
	}
	return 0
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
