package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#3A3A3A")
	ColorText      = lipgloss.Color("#F2F2F2")
	ColorTextMuted = lipgloss.Color("#8A8A8A")
	ColorAccent    = lipgloss.Color("#2F9E8F")
	ColorGreen     = lipgloss.Color("#5FA35F")
	ColorOrange    = lipgloss.Color("#D98E32")
	ColorRed       = lipgloss.Color("#D1493F")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	positiveStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	negativeStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Separator is a row value that renders as a horizontal rule
const Separator = "---"

// Table is a bordered text table. The first column is left-aligned, the others right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return box.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols && !isSeparator(row) {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(widths, t.Headers, headerStyle))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(line(widths, row, valueStyle))
	}
	b.WriteString(rule(widths, "╰", "┴", "╯"))

	return b.String()
}

// RenderBar renders how much of a budget is used. Over 100% the bar is full and red,
// over 80% it is orange.
func RenderBar(percentUsed decimal.Decimal, width int) string {
	if width <= 0 {
		return ""
	}
	pct := percentUsed.InexactFloat64()
	filled := int(pct / 100 * float64(width))
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case pct > 100:
		return negativeStyle.Render(bar)
	case pct > 80:
		return warnStyle.Render(bar)
	default:
		return positiveStyle.Render(bar)
	}
}

// Signed colors an amount green when positive and red when negative.
func Signed(amount decimal.Decimal, text string) string {
	switch {
	case amount.IsNegative():
		return negativeStyle.Render(text)
	case amount.IsPositive():
		return positiveStyle.Render(text)
	default:
		return mutedStyle.Render(text)
	}
}

// Muted renders secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == Separator
}

func rule(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return borderStyle.Render(b.String()) + "\n"
}

func line(widths []int, cells []string, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(borderStyle.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", w-lipgloss.Width(cell))
		if i == 0 {
			b.WriteString(style.Render(" " + cell + pad + " "))
		} else {
			b.WriteString(style.Render(" " + pad + cell + " "))
		}
		b.WriteString(borderStyle.Render("│"))
	}
	b.WriteString("\n")
	return b.String()
}
