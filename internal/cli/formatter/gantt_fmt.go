package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/timeline"
)

// ChartLabelWidth is the fixed width of the row label column.
const ChartLabelWidth = 26

// FormatChart renders a computed layout as a fixed-width terminal
// chart: an axis header, one row per item, and overlay glyphs for the
// today column and dependency connectors. The layout must have been
// computed with BaseWidth equal to the number of plot cells and a
// one-cell minimum bar width; each coordinate unit maps to one cell.
func FormatChart(layout timeline.Layout, title string) string {
	width := plotCells(layout)

	var b strings.Builder
	if title != "" {
		b.WriteString(Bold(title))
		b.WriteString("\n\n")
	}

	gutter := strings.Repeat(" ", ChartLabelWidth+1)
	b.WriteString(gutter)
	b.WriteString(Dim(axisLabels(layout.Markers, width)))
	b.WriteString("\n")
	b.WriteString(gutter)
	b.WriteString(Dim(axisTicks(layout.Markers, width)))
	b.WriteString("\n")

	for i, row := range layout.Rows {
		b.WriteString(chartRow(layout, row, i, width))
		b.WriteString("\n")
	}

	if legend := chartLegend(layout); legend != "" {
		b.WriteString("\n")
		b.WriteString(legend)
		b.WriteString("\n")
	}
	return b.String()
}

func plotCells(l timeline.Layout) int {
	w := int(l.Scale.Width() + 0.5)
	if w < 10 {
		w = 10
	}
	return w
}

func cellAt(x float64, width int) int {
	c := int(x)
	if c < 0 {
		c = 0
	}
	if c > width-1 {
		c = width - 1
	}
	return c
}

// axisLabels places each marker label at its fractional position,
// left-shifted when it would run past the plot edge.
func axisLabels(markers []timeline.Marker, width int) string {
	cells := blankRow(width)
	for _, m := range markers {
		label := []rune(m.Label)
		col := int(m.Position * float64(width-1))
		if col+len(label) > width {
			col = width - len(label)
		}
		if col < 0 {
			col = 0
		}
		copy(cells[col:], label)
	}
	return string(cells)
}

func axisTicks(markers []timeline.Marker, width int) string {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = '─'
	}
	for _, m := range markers {
		cells[int(m.Position*float64(width-1))] = '┬'
	}
	return string(cells)
}

func chartRow(l timeline.Layout, row timeline.Row, rowIdx, width int) string {
	label := PadRight(row.Item.Title, ChartLabelWidth)
	if row.Critical {
		label = StyleRed.Bold(true).Render(label)
	} else {
		label = StyleFg.Render(label)
	}

	if row.Bar == nil {
		return label + " " + Dim("(unscheduled)")
	}

	cells := blankRow(width)
	if l.TodayX != nil {
		cells[cellAt(*l.TodayX, width)] = '┊'
	}
	for _, e := range l.Edges {
		if e.ToRow != rowIdx {
			continue
		}
		from, to := cellAt(e.StartX, width), cellAt(e.EndX, width)
		for c := from; c < to; c++ {
			cells[c] = '┄'
		}
		if to > from {
			cells[to-1] = '▸'
		}
	}

	start := cellAt(row.Bar.Left, width)
	span := int(row.Bar.Width + 0.5)
	if span < 1 {
		span = 1
	}
	if start+span > width {
		span = width - start
	}

	bar := barStyle(row).Render(strings.Repeat("█", span))
	return label + " " +
		Dim(string(cells[:start])) + bar + Dim(string(cells[start+span:]))
}

func barStyle(row timeline.Row) lipgloss.Style {
	if row.Critical {
		return StyleRed
	}
	switch row.Item.Status {
	case string(domain.TaskDone):
		return StyleGreen
	case string(domain.TaskInProgress):
		return StyleYellow
	default:
		return StyleBlue
	}
}

func chartLegend(l timeline.Layout) string {
	var parts []string
	if l.TodayX != nil {
		parts = append(parts, "┊ today")
	}
	if len(l.Edges) > 0 {
		parts = append(parts, "┄▸ depends on")
	}
	if len(parts) == 0 {
		return ""
	}
	return Dim(strings.Join(parts, "   "))
}

func blankRow(width int) []rune {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}
	return cells
}
