package timeline

import (
	"fmt"
	"sort"
	"time"
)

// Granularity selects the axis-label density policy.
type Granularity string

const (
	// GranularityWeek emits one marker per 7-day bucket labeled with
	// the ISO-8601 week number (Gantt header).
	GranularityWeek Granularity = "week"

	// GranularityAdaptive emits month-start markers and thins them as
	// the range grows: every month up to 6 months, every other month
	// up to 12, quarter starts beyond that (roadmap header).
	GranularityAdaptive Granularity = "adaptive"
)

// Marker is one axis label: the date it represents and its fractional
// offset in [0,1] along the range.
type Marker struct {
	Date     time.Time
	Label    string
	Position float64
}

// DefaultMarkerSeparation is the minimum fraction of the total width
// between two surviving markers.
const DefaultMarkerSeparation = 0.025

// GenerateMarkers produces the ordered marker sequence for the range.
// The exact range start and end always survive; between them no two
// markers sit closer than minSeparation (fraction of total width).
// The result is recomputed fresh on every call.
func GenerateMarkers(r Range, g Granularity, minSeparation float64) []Marker {
	if minSeparation <= 0 {
		minSeparation = DefaultMarkerSeparation
	}

	var candidates []Marker
	switch g {
	case GranularityAdaptive:
		candidates = adaptiveCandidates(r)
	default:
		candidates = weekCandidates(r)
	}

	// Force the exact boundaries unless a candidate already sits there.
	candidates = forceBoundary(candidates, r, dateOnly(r.Start))
	candidates = forceBoundary(candidates, r, dateOnly(r.End))

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Position < candidates[j].Position
	})

	return thin(candidates, minSeparation)
}

// weekCandidates walks the range in 7-day buckets. The loop bound is
// the range end, so a single-day range still terminates.
func weekCandidates(r Range) []Marker {
	var out []Marker
	frac := fracIn(r)
	for d := dateOnly(r.Start); !d.After(dateOnly(r.End)); d = d.AddDate(0, 0, 7) {
		_, week := d.ISOWeek()
		out = append(out, Marker{
			Date:     d,
			Label:    fmt.Sprintf("W%02d", week),
			Position: frac(d),
		})
	}
	return out
}

// adaptiveCandidates emits month-start markers, thinned by span.
func adaptiveCandidates(r Range) []Marker {
	start, end := dateOnly(r.Start), dateOnly(r.End)
	spanMonths := monthsBetween(start, end)

	frac := fracIn(r)
	var out []Marker
	for d := firstMonthStart(start); !d.After(end); d = d.AddDate(0, 1, 0) {
		m := int(d.Month()) - 1 // zero-based for cadence checks
		switch {
		case spanMonths <= 6:
			// every month
		case spanMonths <= 12:
			if m%2 != 0 {
				continue
			}
		default:
			if m%3 != 0 {
				continue
			}
		}
		out = append(out, Marker{
			Date:     d,
			Label:    monthLabel(d, spanMonths),
			Position: frac(d),
		})
	}
	return out
}

func monthLabel(d time.Time, spanMonths int) string {
	if spanMonths > 12 {
		quarter := (int(d.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, d.Year())
	}
	if d.Month() == time.January {
		return d.Format("Jan 2006")
	}
	return d.Format("Jan")
}

// forceBoundary appends a marker at date unless one already exists.
func forceBoundary(candidates []Marker, r Range, date time.Time) []Marker {
	for _, m := range candidates {
		if sameDate(m.Date, date) {
			return candidates
		}
	}
	return append(candidates, Marker{
		Date:     date,
		Label:    date.Format("Jan 2"),
		Position: fracIn(r)(date),
	})
}

// thin drops markers closer than minSep to the previous survivor.
// The first and last markers always survive; when the last would
// crowd its predecessor, the predecessor is dropped instead.
func thin(markers []Marker, minSep float64) []Marker {
	if len(markers) <= 2 {
		return markers
	}

	kept := []Marker{markers[0]}
	for _, m := range markers[1 : len(markers)-1] {
		if m.Position-kept[len(kept)-1].Position >= minSep {
			kept = append(kept, m)
		}
	}

	last := markers[len(markers)-1]
	if len(kept) > 1 && last.Position-kept[len(kept)-1].Position < minSep {
		kept = kept[:len(kept)-1]
	}
	return append(kept, last)
}

// fracIn returns a position function for the given range.
func fracIn(r Range) func(time.Time) float64 {
	total := float64(r.TotalDays())
	start := dateOnly(r.Start)
	return func(d time.Time) float64 {
		days := daysBetween(start, d)
		if days < 0 {
			days = 0
		}
		f := float64(days) / total
		if f > 1 {
			f = 1
		}
		return f
	}
}

// firstMonthStart returns d if it is the first of its month, else the
// first of the following month.
func firstMonthStart(d time.Time) time.Time {
	if d.Day() == 1 {
		return d
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}

// monthsBetween counts whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
