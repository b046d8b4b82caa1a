package timeline

import "time"

// Config bundles the tunable policy values of a schedule view.
// The thresholds are UI tuning knobs, not invariants.
type Config struct {
	PaddingDays       int
	MinBarWidth       float64
	MarkerSeparation  float64
	DefaultWindowDays int
}

// GanttConfig is the task-level Gantt view policy.
func GanttConfig() Config {
	return Config{
		PaddingDays:       3,
		MinBarWidth:       DefaultMinBarWidth,
		MarkerSeparation:  DefaultMarkerSeparation,
		DefaultWindowDays: 90,
	}
}

// RoadmapConfig is the epic-level roadmap view policy.
func RoadmapConfig() Config {
	return Config{
		PaddingDays:       7,
		MinBarWidth:       DefaultMinBarWidth,
		MarkerSeparation:  0.03,
		DefaultWindowDays: 90,
	}
}

// DefaultBaseWidth is the unscaled width of the full range at zoom 1.
const DefaultBaseWidth = 1400.0

// Options are the caller-owned inputs of one layout pass.
type Options struct {
	Zoom             float64
	BaseWidth        float64
	Granularity      Granularity
	Now              time.Time // zero means time.Now
	ShowDependencies bool
	Critical         CriticalSet
	Override         *Range
	ExtraDates       []time.Time
	Config           Config
}

// Row pairs an item with its bar geometry. Bar is nil for dateless
// items, which render as plain list rows.
type Row struct {
	Item     Item
	Bar      *Bar
	Critical bool
}

// Layout is the complete output of one layout pass. It is a fresh,
// fully independent value each time; nothing in it is shared or
// cached across passes.
type Layout struct {
	Range   Range
	Scale   Scale
	Markers []Marker
	Rows    []Row
	Edges   []Edge
	TodayX  *float64
}

// Compute runs the full pipeline: resolve the window, build the
// scale, then derive markers, bars, edges and overlays. It is total:
// every input, including empty or inconsistent ones, yields a defined
// layout and never an error.
func Compute(items []Item, opts Options) Layout {
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = GanttConfig()
	}
	baseWidth := opts.BaseWidth
	if baseWidth <= 0 {
		baseWidth = DefaultBaseWidth
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	r := ResolveRange(items, RangeOptions{
		PaddingDays:       cfg.PaddingDays,
		Override:          opts.Override,
		ExtraDates:        opts.ExtraDates,
		Now:               now,
		DefaultWindowDays: cfg.DefaultWindowDays,
	})
	scale := NewScale(r, opts.Zoom, baseWidth)

	rows := make([]Row, len(items))
	bars := make(map[string]*Bar, len(items))
	for i, it := range items {
		bar := BarFor(it, scale, cfg.MinBarWidth)
		rows[i] = Row{Item: it, Bar: bar, Critical: opts.Critical.Contains(it.ID)}
		if bar != nil {
			bars[it.ID] = bar
		}
	}

	layout := Layout{
		Range:   r,
		Scale:   scale,
		Markers: GenerateMarkers(r, opts.Granularity, cfg.MarkerSeparation),
		Rows:    rows,
		Edges:   RouteEdges(items, bars, opts.ShowDependencies),
	}

	if x, ok := TodayPosition(scale, now); ok {
		layout.TodayX = &x
	}
	return layout
}
