package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Title:   "NEEDS",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Huur", "950.00"},
			{Separator},
			{"Boodschappen", "12.50"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "NEEDS")

	// Every bordered line has the same display width
	width := lipgloss.Width(lines[1])
	for _, l := range lines[1:] {
		assert.Equal(t, width, lipgloss.Width(l), l)
	}

	assert.Contains(t, out, "│ Huur         │ 950.00 │")
	assert.Contains(t, out, "│ Boodschappen │  12.50 │")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		pct    string
		filled int
	}{
		{"0", 0},
		{"50", 5},
		{"100", 10},
		{"250", 10},
		{"-20", 0},
	}
	for _, tt := range tests {
		bar := RenderBar(decimal.RequireFromString(tt.pct), 10)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), tt.pct)
		assert.Equal(t, 10, lipgloss.Width(bar), tt.pct)
	}
	assert.Empty(t, RenderBar(decimal.NewFromInt(50), 0))
}
