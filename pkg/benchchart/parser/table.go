// Package parser turns benchmark tables into record blocks.
package parser

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// FieldDelimiter separates cells within a line.
const FieldDelimiter = "\t"

// ParseTable splits every non-blank line of r into cells.
// Trailing whitespace is stripped before splitting, so trailing empty cells are dropped.
func ParseTable(r io.Reader) ([]models.Row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var rows []models.Row
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r\n\v\f")
		if text == "" {
			continue
		}
		rows = append(rows, models.Row{
			Line:  line,
			Cells: strings.Split(text, FieldDelimiter),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadTable reads a delimited text file.
func ReadTable(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.MalformedInputError{Path: path, Err: models.ErrNoInput}
		}
		return nil, err
	}
	defer f.Close()

	rows, err := ParseTable(f)
	if err != nil {
		return nil, &models.MalformedInputError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &models.MalformedInputError{Path: path, Err: models.ErrEmptyInput}
	}
	return &models.Table{Source: path, Rows: rows}, nil
}
