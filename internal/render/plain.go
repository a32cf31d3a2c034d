package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabledemo/internal/frame"
)

// columnGap separates the label column and each data column.
const columnGap = "  "

// Plain renders the dataframe-style layout:
//
//	   H  e  l
//	l  o  w  o
//	r  l  d  !
//
// Column labels and cells are right-aligned to the widest entry in their
// column; row labels are left-aligned to the widest row label.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(w io.Writer, t *frame.Labeled) error {
	r := lipgloss.NewRenderer(w)

	rows, cols := t.Shape()
	rowLabels := t.RowLabels()
	colLabels := t.ColumnLabels()

	labelWidth := 0
	for _, l := range rowLabels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	widths := make([]int, cols)
	for c, l := range colLabels {
		widths[c] = lipgloss.Width(l)
	}
	for i := 0; i < rows; i++ {
		for c := 0; c < cols; c++ {
			widths[c] = max(widths[c], lipgloss.Width(t.Cell(i, c)))
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth))
	for c, l := range colLabels {
		sb.WriteString(columnGap)
		sb.WriteString(r.PlaceHorizontal(widths[c], lipgloss.Right, l))
	}
	sb.WriteString("\n")

	for i, label := range rowLabels {
		sb.WriteString(r.PlaceHorizontal(labelWidth, lipgloss.Left, label))
		for c := 0; c < cols; c++ {
			sb.WriteString(columnGap)
			sb.WriteString(r.PlaceHorizontal(widths[c], lipgloss.Right, t.Cell(i, c)))
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
