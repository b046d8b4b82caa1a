package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routedFixture() ([]Item, map[string]*Bar) {
	items := []Item{
		datedItem("a", dp(2024, 2, 1), dp(2024, 2, 5)),
		datedItem("b", dp(2024, 2, 10), dp(2024, 2, 14)),
	}
	items[1].DependsOn = []string{"a"}

	r := ResolveRange(items, RangeOptions{PaddingDays: 3})
	s := NewScale(r, 1, 1400)
	bars := map[string]*Bar{
		"a": BarFor(items[0], s, 12),
		"b": BarFor(items[1], s, 12),
	}
	return items, bars
}

func TestRouteEdges_ConnectsPrerequisiteEndToDependentStart(t *testing.T) {
	items, bars := routedFixture()

	edges := RouteEdges(items, bars, true)

	require.Len(t, edges, 1)
	e := edges[0]
	assert.Equal(t, "a", e.FromID)
	assert.Equal(t, "b", e.ToID)
	assert.Equal(t, 0, e.FromRow)
	assert.Equal(t, 1, e.ToRow)
	assert.InDelta(t, bars["a"].Left+bars["a"].Width, e.StartX, 1e-9)
	assert.InDelta(t, bars["b"].Left, e.EndX, 1e-9)
	assert.Less(t, e.StartX, e.EndX)
}

func TestRouteEdges_HiddenWhenDisabled(t *testing.T) {
	items, bars := routedFixture()
	assert.Nil(t, RouteEdges(items, bars, false))
}

func TestRouteEdges_SuppressesBackwardEdge(t *testing.T) {
	// A ends Feb 10, B depends on A but starts Feb 5: no visual
	// slack, so no connector is drawn.
	items := []Item{
		datedItem("a", dp(2024, 2, 1), dp(2024, 2, 10)),
		datedItem("b", dp(2024, 2, 5), dp(2024, 2, 20)),
	}
	items[1].DependsOn = []string{"a"}
	r := ResolveRange(items, RangeOptions{PaddingDays: 3})
	s := NewScale(r, 1, 1400)
	bars := map[string]*Bar{
		"a": BarFor(items[0], s, 12),
		"b": BarFor(items[1], s, 12),
	}

	edges := RouteEdges(items, bars, true)

	assert.Empty(t, edges)
}

func TestRouteEdges_SkipsDatelessEndpoints(t *testing.T) {
	items := []Item{
		{ID: "a"}, // dateless prerequisite
		datedItem("b", dp(2024, 2, 10), dp(2024, 2, 14)),
		{ID: "c", DependsOn: []string{"b"}}, // dateless dependent
	}
	items[1].DependsOn = []string{"a"}
	r := ResolveRange(items, RangeOptions{PaddingDays: 3})
	s := NewScale(r, 1, 1400)
	bars := map[string]*Bar{"b": BarFor(items[1], s, 12)}

	edges := RouteEdges(items, bars, true)

	assert.Empty(t, edges, "partial data degrades to no edge, not an error")
}

func TestRouteEdges_MissingPrerequisiteSkipped(t *testing.T) {
	items := []Item{
		datedItem("b", dp(2024, 2, 10), dp(2024, 2, 14)),
	}
	items[0].DependsOn = []string{"ghost"}
	r := ResolveRange(items, RangeOptions{PaddingDays: 3})
	s := NewScale(r, 1, 1400)
	bars := map[string]*Bar{"b": BarFor(items[0], s, 12)}

	assert.Empty(t, RouteEdges(items, bars, true))
}

func TestRouteEdges_NeverBackward(t *testing.T) {
	items := []Item{
		datedItem("a", dp(2024, 1, 1), dp(2024, 1, 20)),
		datedItem("b", dp(2024, 1, 5), dp(2024, 1, 25)),
		datedItem("c", dp(2024, 2, 1), dp(2024, 2, 10)),
	}
	items[2].DependsOn = []string{"a", "b"}
	items[1].DependsOn = []string{"a"}
	r := ResolveRange(items, RangeOptions{PaddingDays: 3})
	s := NewScale(r, 1, 1400)
	bars := make(map[string]*Bar)
	for _, it := range items {
		bars[it.ID] = BarFor(it, s, 12)
	}

	edges := RouteEdges(items, bars, true)

	require.NotEmpty(t, edges)
	for _, e := range edges {
		assert.Less(t, e.StartX, e.EndX, "%s -> %s", e.FromID, e.ToID)
	}
	// a->b overlaps and must be suppressed; a->c and b->c survive.
	assert.Len(t, edges, 2)
}
