package timeline

import "time"

const day = 24 * time.Hour

// dateOnly truncates t to its calendar date, normalized to UTC
// midnight. All engine arithmetic runs on dateOnly values so that
// time-of-day and zone drift cannot move an item by a day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of calendar days from a to b.
// Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)) / day)
}

// sameDate reports whether a and b fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
