package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/scale"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/transform"
)

// Settings configures a render context.
type Settings struct {
	// Dir is the output directory.
	Dir string
	// Prefix starts every file name, usually the input name without extension.
	Prefix string
	// Pad zero-pads the image counter to this many digits (0 disables).
	Pad int
	// Styles maps series kinds to colors and symbols.
	Styles models.Styles
	// Logger receives progress messages. Nil selects the standard logger.
	Logger logrus.FieldLogger
}

// Context owns the image counter and the backend for a whole run.
type Context struct {
	settings Settings
	backend  Backend
	counter  int
	log      logrus.FieldLogger
}

// NewContext creates a render context. The backend is released by Close.
func NewContext(backend Backend, s Settings) *Context {
	if s.Styles == nil {
		s.Styles = models.DefaultStyles()
	}
	log := s.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Context{settings: s, backend: backend, log: log}
}

// Counter returns the number of images written so far.
func (c *Context) Counter() int {
	return c.counter
}

// Close releases the backend.
func (c *Context) Close() error {
	if c.backend == nil {
		return nil
	}
	err := c.backend.Close()
	c.backend = nil
	return err
}

// Prepare shapes and scales a spec without drawing it.
// A *models.DegenerateAxisError means the chart has nothing to plot.
func (c *Context) Prepare(spec models.ChartSpec) (*Frame, error) {
	shaped := transform.Shape(spec)
	for _, s := range shaped.Series {
		if _, err := c.settings.Styles.Lookup(s.Kind); err != nil {
			return nil, err
		}
	}

	sc, err := scale.Compute(shaped.Headers, shaped.Max)
	if err != nil {
		return nil, err
	}
	return &Frame{
		Title:   shaped.Title,
		Headers: shaped.Headers,
		Series:  shaped.Series,
		Scale:   sc,
		Bands:   shaped.Bands,
		Styles:  c.settings.Styles,
	}, nil
}

// Render draws spec and writes it to the next numbered file, returning its path.
// The counter only advances when the image was written.
func (c *Context) Render(spec models.ChartSpec) (string, error) {
	if c.backend == nil {
		return "", fmt.Errorf("render context is closed")
	}
	frame, err := c.Prepare(spec)
	if err != nil {
		return "", err
	}

	path := filepath.Join(c.settings.Dir, FileName(c.settings.Prefix, c.counter+1, c.settings.Pad, frame.Title))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := c.backend.Draw(frame, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("draw %q: %w", frame.Title, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	c.counter++
	c.log.WithFields(logrus.Fields{
		"title":  frame.Title,
		"file":   path,
		"ticks":  frame.Scale.Ticks,
		"y_max":  frame.Scale.Max,
		"series": len(frame.Series),
	}).Debug("chart written")
	return path, nil
}

// FileName builds "{prefix}_-_{counter}_-_{title}.png".
// Path separators in the title are replaced with dashes.
func FileName(prefix string, counter, pad int, title string) string {
	title = strings.NewReplacer("/", "-", "\\", "-").Replace(title)
	return fmt.Sprintf("%s_-_%0*d_-_%s.png", prefix, pad, counter, title)
}
