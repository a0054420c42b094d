package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

func sampleSpec(title string, bands bool) models.ChartSpec {
	var series []models.Series
	for i, k := range models.AllKinds() {
		v := float64(i + 1)
		s := models.Series{Kind: k, Values: []float64{v, 2 * v, 4 * v}}
		if bands {
			s.Min = []float64{v - 0.5, 2*v - 0.5, 4*v - 0.5}
			s.Max = []float64{v + 0.5, 2*v + 0.5, 4*v + 0.5}
		}
		series = append(series, s)
	}
	return models.ChartSpec{
		Dataset: "Add",
		Title:   title,
		Headers: []int{10, 100, 1000},
		Series:  series,
		Bands:   bands,
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		prefix   string
		counter  int
		pad      int
		title    string
		expected string
	}{
		{"results", 3, 0, "Add", "results_-_3_-_Add.png"},
		{"results", 3, 2, "Add normalized", "results_-_03_-_Add normalized.png"},
		{"results", 12, 2, "Add", "results_-_12_-_Add.png"},
		{"bench", 1, 0, "Find/Erase\\x", "bench_-_1_-_Find-Erase-x.png"},
	}

	for _, tt := range tests {
		if got := FileName(tt.prefix, tt.counter, tt.pad, tt.title); got != tt.expected {
			t.Errorf("FileName(%q, %d, %d, %q) = %q, expected %q", tt.prefix, tt.counter, tt.pad, tt.title, got, tt.expected)
		}
	}
}

func TestYLabel(t *testing.T) {
	if got := (&Frame{Title: "Add normalized"}).YLabel(); got != "duration per node (µs/node)" {
		t.Errorf("YLabel = %q", got)
	}
	if got := (&Frame{Title: "Add zoomed"}).YLabel(); got != "duration (µs)" {
		t.Errorf("YLabel = %q", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Errorf("DefaultLayout().Validate() = %v", err)
	}
	l := DefaultLayout()
	l.Width = 300
	if err := l.Validate(); err == nil {
		t.Errorf("Expected error for a layout narrower than its margins")
	}
}

func TestNewBackend(t *testing.T) {
	if _, err := NewBackend("svg", DefaultLayout()); err == nil {
		t.Errorf("Expected error for unknown backend")
	}
	b, err := NewBackend(BackendGoChart, DefaultLayout())
	if err != nil {
		t.Fatalf("NewBackend(gochart) error = %v", err)
	}
	if _, ok := b.(*ChartBackend); !ok {
		t.Errorf("NewBackend(gochart) = %T", b)
	}
}

func drawPNG(t *testing.T, b Backend, spec models.ChartSpec) {
	t.Helper()
	ctx := NewContext(b, Settings{})
	frame, err := ctx.Prepare(spec)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	var buf bytes.Buffer
	if err := b.Draw(frame, &buf); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	layout := DefaultLayout()
	if img.Bounds().Dx() != layout.Width || img.Bounds().Dy() != layout.Height {
		t.Errorf("image size = %v, expected %dx%d", img.Bounds().Size(), layout.Width, layout.Height)
	}
}

func TestSurfaceDraw(t *testing.T) {
	s, err := NewSurface(DefaultLayout())
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	defer s.Close()

	// the surface is reused across charts
	drawPNG(t, s, sampleSpec("Add", true))
	drawPNG(t, s, sampleSpec("Add normalized", false))
}

func TestNewSurfaceMissingFont(t *testing.T) {
	l := DefaultLayout()
	l.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := NewSurface(l); err == nil {
		t.Errorf("Expected error for missing font file")
	}
}

func TestChartBackendDraw(t *testing.T) {
	drawPNG(t, NewChartBackend(DefaultLayout()), sampleSpec("Add", true))
}

func TestContextRender(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSurface(DefaultLayout())
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	logger, _ := test.NewNullLogger()
	ctx := NewContext(s, Settings{Dir: dir, Prefix: "results", Pad: 2, Logger: logger})
	defer ctx.Close()

	path, err := ctx.Render(sampleSpec("Add", true))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if filepath.Base(path) != "results_-_01_-_Add.png" {
		t.Errorf("path = %q", path)
	}
	if ctx.Counter() != 1 {
		t.Errorf("Counter() = %d, expected 1", ctx.Counter())
	}

	// an all-zero chart has no axis and leaves no file
	zero := sampleSpec("Add zero", false)
	for i := range zero.Series {
		zero.Series[i].Values = []float64{0, 0, 0}
	}
	_, err = ctx.Render(zero)
	var degenerate *models.DegenerateAxisError
	if !errors.As(err, &degenerate) {
		t.Errorf("Render(zero) error = %v, expected DegenerateAxisError", err)
	}
	if ctx.Counter() != 1 {
		t.Errorf("Counter() = %d after skipped chart, expected 1", ctx.Counter())
	}

	path, err = ctx.Render(sampleSpec("Add normalized", false))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if filepath.Base(path) != "results_-_02_-_Add normalized.png" {
		t.Errorf("path = %q", path)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 files, got %d", len(entries))
	}
}

func TestContextRenderUnknownStyle(t *testing.T) {
	ctx := NewContext(NewChartBackend(DefaultLayout()), Settings{
		Dir:    t.TempDir(),
		Styles: models.Styles{models.Flat: models.DefaultStyles()[models.Flat]},
	})
	var unknown *models.UnknownSeriesNameError
	if _, err := ctx.Render(sampleSpec("Add", false)); !errors.As(err, &unknown) {
		t.Errorf("Render() error = %v, expected UnknownSeriesNameError", err)
	}
}

func TestContextClosed(t *testing.T) {
	ctx := NewContext(NewChartBackend(DefaultLayout()), Settings{Dir: t.TempDir()})
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := ctx.Render(sampleSpec("Add", false)); err == nil {
		t.Errorf("Expected error rendering on a closed context")
	}
}
