// Package frame provides an immutable two-dimensional grid of string cells
// annotated with row and column labels.
package frame

import (
	"fmt"
	"slices"
)

// ShapeError reports a mismatch between a grid and its labels.
type ShapeError struct {
	What     string // "row labels", "column labels" or "row"
	Index    int    // offending row for ragged grids, -1 otherwise
	Expected int
	Got      int
}

func (e *ShapeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("frame: %s %d has %d cells, expected %d", e.What, e.Index, e.Got, e.Expected)
	}
	return fmt.Sprintf("frame: got %d %s, expected %d", e.Got, e.What, e.Expected)
}

// Labeled is a grid of cells with one label per row and one per column.
type Labeled struct {
	cells     [][]string
	rowLabels []string
	colLabels []string
}

// New builds a Labeled table. The number of row labels must equal the
// number of grid rows, every row must have the same length, and the number
// of column labels must equal that length. Inputs are copied.
func New(cells [][]string, rowLabels, colLabels []string) (*Labeled, error) {
	if len(rowLabels) != len(cells) {
		return nil, &ShapeError{What: "row labels", Index: -1, Expected: len(cells), Got: len(rowLabels)}
	}

	cols := len(colLabels)
	grid := make([][]string, len(cells))
	for i, row := range cells {
		if len(row) != cols {
			return nil, &ShapeError{What: "row", Index: i, Expected: cols, Got: len(row)}
		}
		grid[i] = slices.Clone(row)
	}

	// A grid with no rows cannot disagree with its column labels.
	return &Labeled{
		cells:     grid,
		rowLabels: slices.Clone(rowLabels),
		colLabels: slices.Clone(colLabels),
	}, nil
}

// Greeting returns the fixed 2x3 demo table:
//
//	   H  e  l
//	l  o  w  o
//	r  l  d  !
func Greeting() *Labeled {
	t, err := New(
		[][]string{
			{"o", "w", "o"},
			{"l", "d", "!"},
		},
		[]string{"l", "r"},
		[]string{"H", "e", "l"},
	)
	if err != nil {
		panic(err) // literal data; unreachable
	}
	return t
}

// Shape returns the number of rows and columns.
func (t *Labeled) Shape() (rows, cols int) {
	return len(t.rowLabels), len(t.colLabels)
}

// Cell returns the cell at row r, column c.
func (t *Labeled) Cell(r, c int) string {
	return t.cells[r][c]
}

// Row returns a copy of row r.
func (t *Labeled) Row(r int) []string {
	return slices.Clone(t.cells[r])
}

// Rows returns a copy of every row in order.
func (t *Labeled) Rows() [][]string {
	out := make([][]string, len(t.cells))
	for i, row := range t.cells {
		out[i] = slices.Clone(row)
	}
	return out
}

// RowLabels returns a copy of the row labels.
func (t *Labeled) RowLabels() []string {
	return slices.Clone(t.rowLabels)
}

// ColumnLabels returns a copy of the column labels.
func (t *Labeled) ColumnLabels() []string {
	return slices.Clone(t.colLabels)
}
