package parser

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the first sheet of an xlsx workbook that holds any data.
// Rows without any non-blank cell are dropped, and trailing blank cells are trimmed
// so the result matches what ReadTable yields for the same data exported as text.
func ReadWorkbook(path string) (*models.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &models.MalformedInputError{Path: path, Err: models.ErrNoInput}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.MalformedInputError{Path: path, Err: err}
	}
	defer f.Close()

	var raw [][]string
	for _, sheet := range f.GetSheetList() {
		sheetRows, err := f.GetRows(sheet)
		if err != nil {
			return nil, &models.MalformedInputError{Path: path, Err: err}
		}
		if hasData(sheetRows) {
			raw = sheetRows
			break
		}
	}

	var rows []models.Row
	for rowIdx, cells := range raw {
		end := len(cells)
		for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
			end--
		}
		if end == 0 {
			continue
		}
		rows = append(rows, models.Row{
			Line:  rowIdx + 1, // 1-based row index
			Cells: cells[:end],
		})
	}
	if len(rows) == 0 {
		return nil, &models.MalformedInputError{Path: path, Err: models.ErrEmptyInput}
	}
	return &models.Table{Source: path, Rows: rows}, nil
}

// hasData reports whether any cell is non-blank.
func hasData(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return true
			}
		}
	}
	return false
}
