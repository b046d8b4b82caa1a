package timeline

import "time"

// TodayPosition maps the current date to its coordinate if it falls
// inside the visible range. The containment test is inclusive and
// date-only, so the indicator does not flicker with intraday clock
// drift or zone offsets within a single day.
func TodayPosition(s Scale, now time.Time) (float64, bool) {
	today := dateOnly(now)
	if !s.Range.Contains(today) {
		return 0, false
	}
	return s.Pos(&today), true
}

// CriticalSet is an externally computed set of item IDs on the
// critical path. The engine only renders membership; it never
// derives the path itself.
type CriticalSet map[string]struct{}

// NewCriticalSet builds a set from the given IDs.
func NewCriticalSet(ids ...string) CriticalSet {
	set := make(CriticalSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports membership. A nil set contains nothing.
func (c CriticalSet) Contains(id string) bool {
	_, ok := c[id]
	return ok
}
