package timeline

// Bar is the rendered geometry of a dated item along the time axis.
type Bar struct {
	Left  float64
	Width float64
}

// DefaultMinBarWidth keeps heavily zoomed-out bars visible and
// clickable. It is a UI policy value, independent of zoom.
const DefaultMinBarWidth = 12.0

// BarFor computes an item's bar geometry under the given scale.
// It returns nil when either date is missing: the caller renders a
// dateless row instead of a bar. An end before the start is not an
// error; the duration clamps to one day so the width stays positive
// (schedule data entered by hand is routinely inconsistent).
// Day counting is inclusive: a single-day item spans one day.
func BarFor(it Item, s Scale, minWidth float64) *Bar {
	if !it.Dated() {
		return nil
	}
	if minWidth <= 0 {
		minWidth = DefaultMinBarWidth
	}

	duration := daysBetween(*it.Start, *it.End) + 1
	if duration < 1 {
		duration = 1
	}

	width := float64(duration) * s.DayWidth()
	if width < minWidth {
		width = minWidth
	}

	return &Bar{Left: s.Pos(it.Start), Width: width}
}
