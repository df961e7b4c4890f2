package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazharichir/showdown/hands"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// formatLayout renders a layout as "Combination  cards"
func formatLayout(layout hands.Layout) string {
	return categoryStyle.Render(layout.Combination().String()) + "  " + handStyle.Render(layout.Cards().String())
}

// cell is one table entry. Column widths are measured on the plain text and
// the padding is written outside the styled part.
type cell struct {
	text  string
	style lipgloss.Style
}

func plain(text string) cell {
	return cell{text: text, style: lipgloss.NewStyle()}
}

// renderRows lays the rows out in left-aligned columns two spaces apart
func renderRows(rows [][]cell) string {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c.text))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, c := range row {
			if i == len(row)-1 {
				b.WriteString(c.style.Render(c.text))
				break
			}
			b.WriteString(c.style.Render(c.text))
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c.text)+2))
		}
		b.WriteString("\n")
	}
	return b.String()
}
