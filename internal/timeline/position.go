package timeline

import "time"

// Scale maps calendar dates to linear coordinates along a resolved
// range. BaseWidth is the unscaled width of the full range at zoom 1;
// the effective width is BaseWidth*Zoom. Scale is a value type and
// its methods are pure.
type Scale struct {
	Range     Range
	Zoom      float64
	BaseWidth float64
}

// NewScale builds a scale over r. Non-positive zoom is a caller
// mistake and is treated as 1 rather than rejected.
func NewScale(r Range, zoom, baseWidth float64) Scale {
	if zoom <= 0 {
		zoom = 1
	}
	return Scale{Range: r, Zoom: zoom, BaseWidth: baseWidth}
}

// Width returns the total rendered width of the range.
func (s Scale) Width() float64 {
	return s.BaseWidth * s.Zoom
}

// DayWidth returns the rendered width of a single day.
func (s Scale) DayWidth() float64 {
	return s.Width() / float64(s.Range.TotalDays())
}

// Pos maps a date to its coordinate. Dates before the range start
// clamp to 0. A nil date maps to 0 by contract; callers must check
// definedness before trusting the result for bar placement.
func (s Scale) Pos(t *time.Time) float64 {
	if t == nil {
		return 0
	}
	days := daysBetween(s.Range.Start, *t)
	if days < 0 {
		days = 0
	}
	return float64(days) * s.DayWidth()
}

// Frac maps a date to its fractional offset in [0,1] along the range.
func (s Scale) Frac(t time.Time) float64 {
	days := daysBetween(s.Range.Start, t)
	if days < 0 {
		days = 0
	}
	total := s.Range.TotalDays()
	if days > total {
		days = total
	}
	return float64(days) / float64(total)
}
