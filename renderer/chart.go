package renderer

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/etnz/networth"
)

// DefaultWidth is the default number of plot columns.
const DefaultWidth = 72

// PlotChart draws the chart as text: one row per Y label, one column per
// character of width, and the X labels underneath.
//
// It returns "" for an empty chart.
func PlotChart(c networth.Chart, width int) string {
	if c.IsEmpty() {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	width = max(width, 2)
	rows := len(c.YLabels)
	if rows < 2 {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	for j := range width {
		x := c.MinX + float64(j)*(c.MaxX-c.MinX)/float64(width-1)
		i := int(math.Round(x))
		if i < 0 || i >= len(c.Points) {
			continue
		}
		row := int(math.Round((c.MaxY - c.Points[i].Y) / (c.MaxY - c.MinY) * float64(rows-1)))
		row = min(max(row, 0), rows-1)
		grid[row][j] = '*'
	}

	pad := 0
	for _, l := range c.YLabels {
		pad = max(pad, utf8.RuneCountInString(l))
	}

	var b strings.Builder
	for i, line := range grid {
		label := c.YLabels[i]
		b.WriteString(strings.Repeat(" ", pad-utf8.RuneCountInString(label)))
		b.WriteString(label)
		b.WriteString(" |")
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", pad+1))
	b.WriteString("+")
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")

	// x labels are spread over the plot width, the last one ends at its right edge.
	axis := []rune(strings.Repeat(" ", width))
	n := len(c.XLabels)
	for k, l := range c.XLabels {
		label := []rune(l)
		at := 0
		if n > 1 {
			at = int(math.Round(float64(k) * float64(width-len(label)) / float64(n-1)))
		}
		copy(axis[max(at, 0):], label)
	}
	b.WriteString(strings.Repeat(" ", pad+2))
	b.WriteString(strings.TrimRight(string(axis), " "))
	b.WriteString("\n")
	return b.String()
}
