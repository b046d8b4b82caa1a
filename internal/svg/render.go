package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/dthomann/planview/internal/timeline"
)

// Renderer writes a computed layout as a standalone SVG document.
type Renderer struct {
	Theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// Render writes the chart for one layout. The chart is a left label
// column next to a plot area holding the marker grid, bars, dependency
// connectors and the today line.
func (r *Renderer) Render(w io.Writer, title string, layout timeline.Layout) error {
	t := r.Theme

	chartWidth := int(layout.Scale.Width())
	plotX := t.Layout.Padding + t.Layout.LabelWidth
	plotY := t.Layout.Padding + t.Layout.HeaderHeight
	plotHeight := len(layout.Rows) * t.Layout.RowHeight
	if plotHeight == 0 {
		plotHeight = t.Layout.RowHeight
	}
	totalWidth := plotX + chartWidth + t.Layout.Padding
	totalHeight := plotY + plotHeight + t.Layout.Padding

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.label { font-family: %s; font-size: %dpx; fill: %s; }
.axis { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, totalWidth, totalHeight, t.Colors.Background,
		t.Font.Family, t.Font.Size+2, t.Colors.Text,
		t.Font.Family, t.Font.Size, t.Colors.Text,
		t.Font.Family, t.Font.Size-1, t.Colors.Muted)

	fmt.Fprintf(&b, `<text x="%d" y="%d" class="title">%s</text>`+"\n",
		t.Layout.Padding, t.Layout.Padding+t.Font.Size, escape(title))

	r.writeMarkers(&b, layout, plotX, plotY, chartWidth, plotHeight)
	r.writeRows(&b, layout, plotX, plotY)
	r.writeEdges(&b, layout, plotX, plotY)
	r.writeToday(&b, layout, plotX, plotY, plotHeight)

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeMarkers(b *strings.Builder, layout timeline.Layout, plotX, plotY, chartWidth, plotHeight int) {
	t := r.Theme
	for _, m := range layout.Markers {
		x := plotX + int(m.Position*float64(chartWidth))
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			x, plotY, x, plotY+plotHeight, t.Colors.Grid)
		fmt.Fprintf(b, `<text x="%d" y="%d" class="axis">%s</text>`+"\n",
			x+3, plotY-6, escape(m.Label))
	}
}

func (r *Renderer) writeRows(b *strings.Builder, layout timeline.Layout, plotX, plotY int) {
	t := r.Theme
	barInset := (t.Layout.RowHeight - t.Layout.BarHeight) / 2

	for i, row := range layout.Rows {
		rowY := plotY + i*t.Layout.RowHeight
		textY := rowY + t.Layout.RowHeight/2 + t.Font.Size/2 - 1
		fmt.Fprintf(b, `<text x="%d" y="%d" class="label">%s</text>`+"\n",
			t.Layout.Padding, textY, escape(row.Item.Title))

		if row.Bar == nil {
			continue
		}
		fill := t.Colors.Bar
		switch {
		case row.Critical:
			fill = t.Colors.BarCritical
		case row.Item.Status == "done":
			fill = t.Colors.BarDone
		}
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>`+"\n",
			plotX+int(row.Bar.Left), rowY+barInset,
			int(row.Bar.Width), t.Layout.BarHeight,
			t.Layout.BarRadius, fill)
	}
}

// writeEdges draws each dependency as an elbow connector from the end
// of the predecessor bar to the start of the successor bar.
func (r *Renderer) writeEdges(b *strings.Builder, layout timeline.Layout, plotX, plotY int) {
	t := r.Theme
	for _, e := range layout.Edges {
		fromY := plotY + e.FromRow*t.Layout.RowHeight + t.Layout.RowHeight/2
		toY := plotY + e.ToRow*t.Layout.RowHeight + t.Layout.RowHeight/2
		startX := plotX + int(e.StartX)
		endX := plotX + int(e.EndX)
		midX := (startX + endX) / 2
		fmt.Fprintf(b, `<polyline points="%d,%d %d,%d %d,%d %d,%d" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			startX, fromY, midX, fromY, midX, toY, endX, toY, t.Colors.Edge)
	}
}

func (r *Renderer) writeToday(b *strings.Builder, layout timeline.Layout, plotX, plotY, plotHeight int) {
	if layout.TodayX == nil {
		return
	}
	t := r.Theme
	x := plotX + int(*layout.TodayX)
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" stroke-dasharray="4,3"/>`+"\n",
		x, plotY, x, plotY+plotHeight, t.Colors.Today)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
