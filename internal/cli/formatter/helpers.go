package formatter

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormatDate renders an optional date, or a dim dash when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return Dim("—")
	}
	return t.Format(dateLayout)
}

// PadRight pads a string to a minimum width, truncating with an
// ellipsis if it is too long.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
