package models

// Row is one non-blank line of the input split into cells.
type Row struct {
	// Line is the 1-based line (or sheet row) the cells came from.
	Line int
	// Cells holds the raw cell strings.
	Cells []string
}

// Cell returns the cell at idx or "" when the row is shorter.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx]
}

// Table is the parsed input before block framing.
type Table struct {
	// Source is the path the table was read from.
	Source string
	// Rows contains the non-blank rows in input order.
	Rows []Row
}

// Schema selects the column layout of series rows.
type Schema string

const (
	// SchemaAuto detects the layout from the row width of each block.
	SchemaAuto Schema = "auto"
	// SchemaV1 rows hold values only.
	SchemaV1 Schema = "v1"
	// SchemaV2 rows hold values followed by a min group and a max group.
	SchemaV2 Schema = "v2"
)

// Block is one dataset: a header row and its series rows.
type Block struct {
	// Name is the dataset (chart) name.
	Name string
	// Line is the source line of the header row.
	Line int
	// Headers are the problem sizes, strictly increasing and positive.
	Headers []int
	// Series holds the series rows in input order.
	Series []Series
	// Schema is the layout the block was read with.
	Schema Schema
}
