// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/recent/internal/ui/styles"
)

// RecentHeaders are the column headers of the recent files table.
var RecentHeaders = []string{"NAME", "PATH"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
// The last column is muted.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	last := len(headers) - 1
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle().PaddingRight(2)
			}
			if col == last {
				return styles.MutedStyle().PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// DisplayName returns the last element of path, splitting on both '/' and
// '\' so Windows paths read the same on every platform.
func DisplayName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// RecentTableRows builds NAME/PATH rows, most recent first.
func RecentTableRows(files []string) [][]string {
	rows := make([][]string, len(files))
	for i, f := range files {
		rows[i] = []string{DisplayName(f), f}
	}
	return rows
}
