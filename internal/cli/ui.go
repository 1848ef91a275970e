// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary values
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorGray  = lipgloss.Color("245") // headers
	colorDim   = lipgloss.Color("240") // borders, muted text
)

var (
	// StyleTitle for headings above tables.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

// headerRow is the row index lipgloss/table passes for the header.
const headerRow = -1

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// printSuccess writes a success line.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printError writes an error line.
func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// renderTable lays rows out under headers with a rounded border. Columns
// listed in numeric are right-aligned.
func renderTable(headers []string, rows [][]string, numeric ...int) string {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader.Padding(0, 1)
			}
			if right[col] {
				return styleCell.Align(lipgloss.Right)
			}
			return styleCell
		})

	return t.Render()
}
