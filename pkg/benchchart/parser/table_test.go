package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

func TestParseTable(t *testing.T) {
	input := "Benchmark\n\nRound 1\t\n\tSize\t10\t100\n  \nAdd\tFlat\t1,5\t2\t\t\r\n"

	rows, err := ParseTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	tests := []struct {
		line  int
		cells []string
	}{
		{1, []string{"Benchmark"}},
		{3, []string{"Round 1"}},
		{4, []string{"", "Size", "10", "100"}},
		{6, []string{"Add", "Flat", "1,5", "2"}},
	}
	for i, tt := range tests {
		if rows[i].Line != tt.line {
			t.Errorf("row %d: line = %d, expected %d", i, rows[i].Line, tt.line)
		}
		if strings.Join(rows[i].Cells, "|") != strings.Join(tt.cells, "|") {
			t.Errorf("row %d: cells = %q, expected %q", i, rows[i].Cells, tt.cells)
		}
	}
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "missing.csv"))

	var malformed *models.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedInputError, got %v", err)
	}
	if !errors.Is(err, models.ErrNoInput) {
		t.Errorf("Expected ErrNoInput, got %v", err)
	}
}

func TestReadTableEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("\n\n  \n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := ReadTable(path)
	if !errors.Is(err, models.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestReadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.csv")
	if err := os.WriteFile(path, []byte(sampleTable(false)), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.Source != path {
		t.Errorf("Source = %q, expected %q", table.Source, path)
	}
	if len(table.Rows) != 2+2*BlockStride {
		t.Errorf("Expected %d rows, got %d", 2+2*BlockStride, len(table.Rows))
	}
}
