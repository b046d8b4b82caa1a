package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testScale() Scale {
	r := Range{Start: date(2023, 12, 29), End: date(2024, 1, 8)}
	return NewScale(r, 1, 1400)
}

func TestScale_DayWidth(t *testing.T) {
	s := testScale()
	assert.InDelta(t, 140.0, s.DayWidth(), 1e-9)
}

func TestScale_Pos(t *testing.T) {
	s := testScale()

	cases := []struct {
		name string
		d    *time.Time
		want float64
	}{
		{"range start", dp(2023, 12, 29), 0},
		{"three days in", dp(2024, 1, 1), 420},
		{"range end", dp(2024, 1, 8), 1400},
		{"before range clamps to zero", dp(2023, 12, 1), 0},
		{"nil maps to zero by contract", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, s.Pos(tc.d), 1e-9)
		})
	}
}

func TestScale_Monotonic(t *testing.T) {
	s := testScale()
	prev := -1.0
	for d := s.Range.Start; !d.After(s.Range.End); d = d.AddDate(0, 0, 1) {
		dd := d
		pos := s.Pos(&dd)
		assert.GreaterOrEqual(t, pos, prev, "position must not decrease at %s", d)
		prev = pos
	}
}

func TestScale_Deterministic(t *testing.T) {
	s := testScale()
	d := dp(2024, 1, 3)
	first := s.Pos(d)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Pos(d), "identical inputs must yield identical output")
	}
}

func TestScale_ZoomScalesLinearly(t *testing.T) {
	r := Range{Start: date(2024, 1, 1), End: date(2024, 1, 11)}
	d := dp(2024, 1, 6)

	full := NewScale(r, 1.0, 1000)
	half := NewScale(r, 0.5, 1000)
	double := NewScale(r, 2.0, 1000)

	assert.InDelta(t, full.Pos(d)/2, half.Pos(d), 1e-9)
	assert.InDelta(t, full.Pos(d)*2, double.Pos(d), 1e-9)
}

func TestNewScale_GuardsNonPositiveZoom(t *testing.T) {
	r := Range{Start: date(2024, 1, 1), End: date(2024, 1, 11)}

	assert.Equal(t, 1.0, NewScale(r, 0, 1000).Zoom)
	assert.Equal(t, 1.0, NewScale(r, -2, 1000).Zoom)
}

func TestScale_Frac(t *testing.T) {
	r := Range{Start: date(2024, 1, 1), End: date(2024, 1, 11)}
	s := NewScale(r, 1, 1000)

	assert.InDelta(t, 0.0, s.Frac(date(2024, 1, 1)), 1e-9)
	assert.InDelta(t, 0.5, s.Frac(date(2024, 1, 6)), 1e-9)
	assert.InDelta(t, 1.0, s.Frac(date(2024, 1, 11)), 1e-9)
	assert.InDelta(t, 1.0, s.Frac(date(2024, 3, 1)), 1e-9, "past end clamps to 1")
}
