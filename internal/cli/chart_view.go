package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dthomann/planview/internal/cli/formatter"
	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/service"
)

type chartKind int

const (
	chartGantt chartKind = iota
	chartRoadmap
)

// Zoom bounds for the interactive chart.
const (
	zoomStep = 0.25
	zoomMin  = 0.5
	zoomMax  = 3.0
)

// chartLayoutMsg signals that a layout pass has finished.
type chartLayoutMsg struct {
	view *service.ScheduleView
	err  error
}

type chartKeyMap struct {
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ToggleDeps key.Binding
	Quit       key.Binding
}

func (k chartKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.ToggleDeps, k.Quit}
}

func (k chartKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultChartKeys() chartKeyMap {
	return chartKeyMap{
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		ToggleDeps: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "deps")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// chartModel renders a Gantt or roadmap chart interactively: the zoom
// and dependency toggles recompute the layout through the schedule
// service on every change.
type chartModel struct {
	app     *App
	kind    chartKind
	project *domain.Project
	opts    service.ScheduleOptions

	width   int
	height  int
	loading bool
	view    *service.ScheduleView
	err     error

	keys chartKeyMap
	help help.Model
}

func newChartModel(app *App, kind chartKind, project *domain.Project, opts service.ScheduleOptions) *chartModel {
	if opts.Zoom == 0 {
		opts.Zoom = 1.0
	}
	return &chartModel{
		app:     app,
		kind:    kind,
		project: project,
		opts:    opts,
		width:   staticChartCells + formatter.ChartLabelWidth,
		loading: true,
		keys:    defaultChartKeys(),
		help:    help.New(),
	}
}

func (m *chartModel) Init() tea.Cmd {
	return m.reload()
}

// plotCells is the chart width that fits beside the label column.
func (m *chartModel) plotCells() int {
	cells := m.width - formatter.ChartLabelWidth - 2
	if cells < 20 {
		cells = 20
	}
	return cells
}

func (m *chartModel) reload() tea.Cmd {
	opts := m.opts
	opts.BaseWidth = float64(m.plotCells())
	opts.MinBarWidth = 1

	app, kind, projectID := m.app, m.kind, m.project.ID
	return func() tea.Msg {
		view, err := computeLayout(context.Background(), app, kind, projectID, opts)
		return chartLayoutMsg{view: view, err: err}
	}
}

func (m *chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.reload()

	case chartLayoutMsg:
		m.loading = false
		m.view, m.err = msg.view, msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			if m.opts.Zoom < zoomMax {
				m.opts.Zoom += zoomStep
				return m, m.reload()
			}
		case key.Matches(msg, m.keys.ZoomOut):
			if m.opts.Zoom > zoomMin {
				m.opts.Zoom -= zoomStep
				return m, m.reload()
			}
		case key.Matches(msg, m.keys.ToggleDeps):
			if m.kind == chartGantt {
				m.opts.ShowDependencies = !m.opts.ShowDependencies
				return m, m.reload()
			}
		}
	}
	return m, nil
}

func (m *chartModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Computing layout...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	chart := formatter.FormatChart(m.view.Layout, chartTitle(m.kind, m.project))

	// Zoomed-in charts overflow the viewport; clip each line so the
	// alternate screen stays stable.
	clip := lipgloss.NewStyle().MaxWidth(m.width)
	lines := strings.Split(chart, "\n")
	for i, line := range lines {
		lines[i] = clip.Render(line)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("zoom ×%s",
		strconv.FormatFloat(m.opts.Zoom, 'f', -1, 64))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
