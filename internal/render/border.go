package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"tabledemo/internal/frame"
)

// Border renders the table inside a rounded box. Row labels form the first
// column and column labels the header row.
type Border struct{}

// Render implements Renderer.
func (Border) Render(w io.Writer, t *frame.Labeled) error {
	styles := stylesFor(lipgloss.NewRenderer(w))

	headers := append([]string{""}, t.ColumnLabels()...)

	rowLabels := t.RowLabels()
	rows := make([][]string, len(rowLabels))
	for i, label := range rowLabels {
		rows[i] = append([]string{label}, t.Row(i)...)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col == 0:
				return styles.Label
			default:
				return styles.Cell
			}
		})

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
