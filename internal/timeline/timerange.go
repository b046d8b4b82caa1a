package timeline

import "time"

// Range is the resolved visible window of a schedule view.
// Start <= End always holds and the span is at least one day.
type Range struct {
	Start time.Time
	End   time.Time
}

// TotalDays returns the span of the range in days, never less than 1.
func (r Range) TotalDays() int {
	d := daysBetween(r.Start, r.End)
	if d < 1 {
		return 1
	}
	return d
}

// Contains reports whether t falls inside the range, inclusive at
// both ends. Comparison is date-only.
func (r Range) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(dateOnly(r.Start)) && !d.After(dateOnly(r.End))
}

// RangeOptions controls how ResolveRange derives the window.
type RangeOptions struct {
	// PaddingDays expands both ends of the min/max window. Values
	// below zero are treated as zero.
	PaddingDays int

	// Override, when set, wins over anything derived from the items.
	// Padding is not applied to an override.
	Override *Range

	// ExtraDates are windows that widen the range without belonging
	// to any item, e.g. sprint boundaries on the roadmap.
	ExtraDates []time.Time

	// Now anchors the fallback window when no item carries a date.
	// Zero means time.Now.
	Now time.Time

	// DefaultWindowDays is the width of the fallback window.
	// Zero means 90.
	DefaultWindowDays int
}

// ResolveRange derives the visible window from the items' dates plus
// any extra dates. With no dated input at all it falls back to
// [now, now+DefaultWindowDays]. It never fails: nil dates are
// skipped, and the result always spans at least one day.
func ResolveRange(items []Item, opts RangeOptions) Range {
	if opts.Override != nil {
		return normalize(*opts.Override)
	}

	padding := opts.PaddingDays
	if padding < 0 {
		padding = 0
	}

	var dates []time.Time
	for _, it := range items {
		if it.Start != nil {
			dates = append(dates, dateOnly(*it.Start))
		}
		if it.End != nil {
			dates = append(dates, dateOnly(*it.End))
		}
	}
	for _, d := range opts.ExtraDates {
		dates = append(dates, dateOnly(d))
	}

	if len(dates) == 0 {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		window := opts.DefaultWindowDays
		if window <= 0 {
			window = 90
		}
		start := dateOnly(now)
		return Range{Start: start, End: start.AddDate(0, 0, window)}
	}

	minDate, maxDate := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	return normalize(Range{
		Start: minDate.AddDate(0, 0, -padding),
		End:   maxDate.AddDate(0, 0, padding),
	})
}

// normalize enforces the range invariants: ordered endpoints and a
// minimum one-day span.
func normalize(r Range) Range {
	start, end := dateOnly(r.Start), dateOnly(r.End)
	if end.Before(start) {
		start, end = end, start
	}
	if daysBetween(start, end) < 1 {
		end = start.AddDate(0, 0, 1)
	}
	return Range{Start: start, End: end}
}
