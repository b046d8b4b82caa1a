package svg

import (
	"strings"
	"testing"
	"time"

	"github.com/dthomann/planview/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedChart(t *testing.T, items []timeline.Item, opts timeline.Options) string {
	t.Helper()
	layout := timeline.Compute(items, opts)

	var buf strings.Builder
	require.NoError(t, NewRenderer(DefaultTheme()).Render(&buf, "Website", layout))
	return buf.String()
}

func dp(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}

func TestRender_BasicChart(t *testing.T) {
	items := []timeline.Item{
		{ID: "a", Title: "Design", Start: dp(2024, 3, 1), End: dp(2024, 3, 5)},
		{ID: "b", Title: "Build", Status: "done", Start: dp(2024, 3, 6), End: dp(2024, 3, 12)},
	}
	out := renderedChart(t, items, timeline.Options{
		Now: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, ">Design</text>")
	assert.Contains(t, out, ">Build</text>")
	assert.Equal(t, 2, strings.Count(out, "<rect x="), "one bar rect per dated item")
	assert.Contains(t, out, `stroke-dasharray`, "today line is drawn")
}

func TestRender_DatelessItemHasNoBar(t *testing.T) {
	items := []timeline.Item{
		{ID: "a", Title: "Someday"},
	}
	out := renderedChart(t, items, timeline.Options{})

	assert.Contains(t, out, ">Someday</text>")
	assert.Equal(t, 0, strings.Count(out, "<rect x="))
}

func TestRender_CriticalBarUsesCriticalColor(t *testing.T) {
	items := []timeline.Item{
		{ID: "a", Title: "Hot path", Start: dp(2024, 3, 1), End: dp(2024, 3, 5)},
	}
	out := renderedChart(t, items, timeline.Options{
		Critical: timeline.NewCriticalSet("a"),
	})

	assert.Contains(t, out, DefaultTheme().Colors.BarCritical)
}

func TestRender_EdgesDrawConnectors(t *testing.T) {
	items := []timeline.Item{
		{ID: "a", Title: "First", Start: dp(2024, 3, 1), End: dp(2024, 3, 5)},
		{ID: "b", Title: "Second", Start: dp(2024, 3, 10), End: dp(2024, 3, 14), DependsOn: []string{"a"}},
	}
	out := renderedChart(t, items, timeline.Options{ShowDependencies: true})

	assert.Equal(t, 1, strings.Count(out, "<polyline"))
}

func TestRender_EscapesMarkup(t *testing.T) {
	items := []timeline.Item{
		{ID: "a", Title: `Fix <script> & "quotes"`},
	}
	out := renderedChart(t, items, timeline.Options{})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp;")
}

func TestRender_EmptyLayoutStillValid(t *testing.T) {
	out := renderedChart(t, nil, timeline.Options{})

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	assert.Contains(t, out, "</svg>")
	assert.NotZero(t, strings.Count(out, "<line"), "boundary markers always present")
}
