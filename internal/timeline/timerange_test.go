package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func datedItem(id string, start, end *time.Time) Item {
	return Item{ID: id, Title: id, Start: start, End: end}
}

func TestResolveRange_PadsMinMax(t *testing.T) {
	items := []Item{
		datedItem("a", dp(2024, 1, 1), dp(2024, 1, 5)),
	}

	r := ResolveRange(items, RangeOptions{PaddingDays: 3})

	assert.Equal(t, date(2023, 12, 29), r.Start)
	assert.Equal(t, date(2024, 1, 8), r.End)
	assert.Equal(t, 10, r.TotalDays())
}

func TestResolveRange_ContainsAllItemDates(t *testing.T) {
	items := []Item{
		datedItem("a", dp(2024, 2, 10), dp(2024, 3, 1)),
		datedItem("b", dp(2024, 1, 20), dp(2024, 2, 15)),
		datedItem("c", dp(2024, 2, 28), dp(2024, 4, 2)),
	}

	r := ResolveRange(items, RangeOptions{PaddingDays: 5})

	require.True(t, r.Start.Before(r.End))
	for _, it := range items {
		assert.True(t, r.Contains(*it.Start), "start of %s", it.ID)
		assert.True(t, r.Contains(*it.End), "end of %s", it.ID)
	}
}

func TestResolveRange_EmptyFallsBackToDefaultWindow(t *testing.T) {
	r := ResolveRange(nil, RangeOptions{Now: testNow})

	assert.Equal(t, date(2024, 6, 15), r.Start)
	assert.Equal(t, date(2024, 9, 13), r.End)
	assert.True(t, r.End.After(r.Start))
}

func TestResolveRange_OneSidedDatesStillCollected(t *testing.T) {
	// A one-sided item is dateless for bar geometry, but its single
	// date still widens the window.
	items := []Item{
		{ID: "a", Start: dp(2024, 3, 1)},
		{ID: "b"},
	}

	r := ResolveRange(items, RangeOptions{Now: testNow, DefaultWindowDays: 30})

	assert.Equal(t, date(2024, 3, 1), r.Start)
}

func TestResolveRange_NoDatesAtAll(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}}

	r := ResolveRange(items, RangeOptions{Now: testNow, DefaultWindowDays: 30})

	assert.Equal(t, date(2024, 6, 15), r.Start)
	assert.Equal(t, date(2024, 7, 15), r.End)
}

func TestResolveRange_SingleDateNeverZeroWidth(t *testing.T) {
	items := []Item{
		datedItem("a", dp(2024, 5, 1), dp(2024, 5, 1)),
	}

	r := ResolveRange(items, RangeOptions{PaddingDays: 0})

	assert.True(t, r.End.After(r.Start), "range must never be zero-width")
	assert.GreaterOrEqual(t, r.TotalDays(), 1)
}

func TestResolveRange_OverrideWins(t *testing.T) {
	override := Range{Start: date(2024, 1, 1), End: date(2024, 2, 1)}
	items := []Item{
		datedItem("a", dp(2025, 1, 1), dp(2025, 6, 1)),
	}

	r := ResolveRange(items, RangeOptions{PaddingDays: 3, Override: &override})

	assert.Equal(t, override.Start, r.Start)
	assert.Equal(t, override.End, r.End)
}

func TestResolveRange_ExtraDatesWidenWindow(t *testing.T) {
	items := []Item{
		datedItem("epic", dp(2024, 3, 1), dp(2024, 3, 20)),
	}
	sprintEnd := date(2024, 5, 10)

	r := ResolveRange(items, RangeOptions{ExtraDates: []time.Time{sprintEnd}})

	assert.True(t, r.Contains(sprintEnd), "sprint window must be visible")
}

func TestResolveRange_InvertedOverrideNormalized(t *testing.T) {
	override := Range{Start: date(2024, 2, 1), End: date(2024, 1, 1)}

	r := ResolveRange(nil, RangeOptions{Override: &override})

	assert.True(t, r.Start.Before(r.End))
}

func TestRangeContains_Inclusive(t *testing.T) {
	r := Range{Start: date(2024, 1, 1), End: date(2024, 1, 31)}

	assert.True(t, r.Contains(date(2024, 1, 1)))
	assert.True(t, r.Contains(date(2024, 1, 31)))
	assert.True(t, r.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(date(2023, 12, 31)))
	assert.False(t, r.Contains(date(2024, 2, 1)))
}
