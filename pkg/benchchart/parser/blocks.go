package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

const (
	// FirstBlockRow is the index of the first header row; the rows before it are titles.
	FirstBlockRow = 2
	// BlockStride is the number of rows per record block.
	BlockStride = 1 + models.SeriesPerBlock
	// valueColumn is the first value column of every row.
	valueColumn = 2
)

// Blocks frames the table rows into record blocks of BlockStride rows.
func Blocks(t *models.Table) ([][]models.Row, error) {
	if len(t.Rows) <= FirstBlockRow {
		return nil, &models.MalformedInputError{
			Path:   t.Source,
			Reason: "no record blocks after the title rows",
		}
	}

	var blocks [][]models.Row
	for i := FirstBlockRow; i < len(t.Rows); i += BlockStride {
		if i+BlockStride > len(t.Rows) {
			return nil, &models.MalformedInputError{
				Path:   t.Source,
				Line:   t.Rows[i].Line,
				Reason: fmt.Sprintf("incomplete record block: %d of %d rows", len(t.Rows)-i, BlockStride),
			}
		}
		blocks = append(blocks, t.Rows[i:i+BlockStride])
	}
	return blocks, nil
}

// ExtractBlocks frames and extracts every block of the table.
func ExtractBlocks(t *models.Table, schema models.Schema) ([]models.Block, error) {
	framed, err := Blocks(t)
	if err != nil {
		return nil, err
	}

	blocks := make([]models.Block, 0, len(framed))
	for _, rows := range framed {
		b, err := ExtractBlock(rows, schema)
		if err != nil {
			var m *models.MalformedInputError
			if errors.As(err, &m) && m.Path == "" {
				m.Path = t.Source
			}
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// ExtractBlock slices one record block into headers, names, values and optional bands.
// The number of value columns W is the number of headers.
func ExtractBlock(rows []models.Row, schema models.Schema) (models.Block, error) {
	if len(rows) < 2 {
		return models.Block{}, &models.MalformedInputError{Reason: "record block has no series rows"}
	}

	header := rows[0]
	headers, err := parseHeaders(header, rows[1:])
	if err != nil {
		return models.Block{}, err
	}
	width := len(headers)

	name := strings.TrimSpace(rows[1].Cell(0))
	if name == "" {
		name = strings.TrimSpace(header.Cell(0))
	}

	layout, err := resolveSchema(rows[1:], width, schema)
	if err != nil {
		return models.Block{}, err
	}

	block := models.Block{
		Name:    name,
		Line:    header.Line,
		Headers: headers,
		Series:  make([]models.Series, 0, len(rows)-1),
		Schema:  layout,
	}
	for _, row := range rows[1:] {
		s, err := extractSeries(row, width, layout)
		if err != nil {
			return models.Block{}, err
		}
		block.Series = append(block.Series, s)
	}
	return block, nil
}

func parseHeaders(row models.Row, series []models.Row) ([]int, error) {
	if len(row.Cells) <= valueColumn {
		return nil, models.NewMalformedInputError(row.Line, "header row has no size columns")
	}

	cells := headerGroup(row.Cells[valueColumn:], series)
	headers := make([]int, len(cells))
	for i, cell := range cells {
		h, err := ParseHeader(cell)
		if err != nil {
			return nil, &models.ParseError{Line: row.Line, Column: valueColumn + i + 1, Value: cell, Err: err}
		}
		if h <= 0 {
			return nil, models.NewMalformedInputError(row.Line, fmt.Sprintf("header %d in column %d is not positive", h, valueColumn+i+1))
		}
		if i > 0 && h <= headers[i-1] {
			return nil, models.NewMalformedInputError(row.Line, fmt.Sprintf("header %d in column %d does not increase", h, valueColumn+i+1))
		}
		headers[i] = h
	}
	return headers, nil
}

// headerGroup returns the header cells of the value group. Band tables may
// label the min and max groups too, either by repeating the sizes or with
// series rows exactly three groups wide.
func headerGroup(cells []string, series []models.Row) []string {
	n := len(cells)
	if n%3 == 0 && n/3 >= 2 && repeatsGroup(cells, n/3) {
		return cells[:n/3]
	}

	w := increasingRun(cells)
	if w < 2 || w == n || len(series) == 0 {
		return cells
	}
	for _, row := range series {
		if len(row.Cells) != valueColumn+3*w {
			return cells
		}
	}
	return cells[:w]
}

func repeatsGroup(cells []string, w int) bool {
	for i := w; i < len(cells); i++ {
		if strings.TrimSpace(cells[i]) != strings.TrimSpace(cells[i%w]) {
			return false
		}
	}
	return true
}

// increasingRun returns the length of the leading run of strictly increasing sizes.
func increasingRun(cells []string) int {
	prev := 0
	for i, cell := range cells {
		h, err := ParseHeader(cell)
		if err != nil || h <= prev {
			return i
		}
		prev = h
	}
	return len(cells)
}

// resolveSchema picks the layout: auto selects V2 when every series row carries
// the two band groups.
func resolveSchema(rows []models.Row, width int, schema models.Schema) (models.Schema, error) {
	switch schema {
	case models.SchemaV1, models.SchemaV2:
		return schema, nil
	case models.SchemaAuto, "":
	default:
		return "", fmt.Errorf("unknown schema %q", schema)
	}

	for _, row := range rows {
		if len(row.Cells) < valueColumn+3*width {
			return models.SchemaV1, nil
		}
	}
	return models.SchemaV2, nil
}

func extractSeries(row models.Row, width int, layout models.Schema) (models.Series, error) {
	name := strings.TrimSpace(row.Cell(1))
	kind, err := models.ParseSeriesKind(name)
	if err != nil {
		return models.Series{}, &models.UnknownSeriesNameError{Name: name, Line: row.Line}
	}

	groups := 1
	if layout == models.SchemaV2 {
		groups = 3
	}
	if want := valueColumn + groups*width; len(row.Cells) < want {
		return models.Series{}, models.NewMalformedInputError(row.Line,
			fmt.Sprintf("series %q has %d value columns, want %d", name, len(row.Cells)-valueColumn, want-valueColumn))
	}

	s := models.Series{Kind: kind}
	if s.Values, err = parseGroup(row, valueColumn, width); err != nil {
		return models.Series{}, err
	}
	if groups == 3 {
		if s.Min, err = parseGroup(row, valueColumn+width, width); err != nil {
			return models.Series{}, err
		}
		if s.Max, err = parseGroup(row, valueColumn+2*width, width); err != nil {
			return models.Series{}, err
		}
	}
	return s, nil
}

func parseGroup(row models.Row, start, width int) ([]float64, error) {
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		cell := row.Cells[start+i]
		v, err := ParseValue(cell)
		if err != nil {
			return nil, &models.ParseError{Line: row.Line, Column: start + i + 1, Value: cell, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// ParseValue parses a measurement, accepting a decimal comma.
func ParseValue(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// ParseHeader parses a problem size.
func ParseHeader(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
