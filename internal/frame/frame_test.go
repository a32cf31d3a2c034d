package frame

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	tbl := Greeting()

	rows, cols := tbl.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	want := [][]string{{"o", "w", "o"}, {"l", "d", "!"}}
	if diff := cmp.Diff(want, tbl.Rows()); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"l", "r"}, tbl.RowLabels()); diff != "" {
		t.Errorf("row labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"H", "e", "l"}, tbl.ColumnLabels()); diff != "" {
		t.Errorf("column labels mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "!", tbl.Cell(1, 2))
	assert.Equal(t, []string{"o", "w", "o"}, tbl.Row(0))
}

func TestNew_ShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		cells     [][]string
		rowLabels []string
		colLabels []string
		what      string
	}{
		{
			name:      "too few row labels",
			cells:     [][]string{{"a"}, {"b"}},
			rowLabels: []string{"x"},
			colLabels: []string{"c"},
			what:      "row labels",
		},
		{
			name:      "too many column labels",
			cells:     [][]string{{"a", "b"}},
			rowLabels: []string{"x"},
			colLabels: []string{"c", "d", "e"},
			what:      "row",
		},
		{
			name:      "ragged grid",
			cells:     [][]string{{"a", "b"}, {"c"}},
			rowLabels: []string{"x", "y"},
			colLabels: []string{"c", "d"},
			what:      "row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.cells, tt.rowLabels, tt.colLabels)
			require.Error(t, err)
			assert.Nil(t, tbl)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.what, shapeErr.What)
		})
	}
}

func TestShapeError_Message(t *testing.T) {
	_, err := New([][]string{{"a", "b"}, {"c"}}, []string{"x", "y"}, []string{"c", "d"})
	require.Error(t, err)
	assert.Equal(t, "frame: row 1 has 1 cells, expected 2", err.Error())

	_, err = New([][]string{{"a"}}, nil, []string{"c"})
	require.Error(t, err)
	assert.Equal(t, "frame: got 0 row labels, expected 1", err.Error())
}

func TestNew_CopiesInput(t *testing.T) {
	cells := [][]string{{"a", "b"}}
	rowLabels := []string{"x"}
	colLabels := []string{"c", "d"}

	tbl, err := New(cells, rowLabels, colLabels)
	require.NoError(t, err)

	cells[0][0] = "mutated"
	rowLabels[0] = "mutated"
	colLabels[0] = "mutated"

	assert.Equal(t, "a", tbl.Cell(0, 0))
	assert.Equal(t, []string{"x"}, tbl.RowLabels())
	assert.Equal(t, []string{"c", "d"}, tbl.ColumnLabels())

	// Accessors hand out copies too.
	tbl.Row(0)[1] = "mutated"
	tbl.ColumnLabels()[1] = "mutated"
	assert.Equal(t, "b", tbl.Cell(0, 1))
	assert.Equal(t, "d", tbl.ColumnLabels()[1])
}

func TestNew_Empty(t *testing.T) {
	tbl, err := New(nil, nil, []string{"a", "b"})
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)
}
