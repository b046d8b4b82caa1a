package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dthomann/planview/internal/cli/formatter"
	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/scheduler"
	"github.com/dthomann/planview/internal/service"
	"github.com/dthomann/planview/internal/svg"
	"github.com/dthomann/planview/internal/timeline"
)

// staticChartCells is the plot width used for non-interactive output,
// where no terminal size is known.
const staticChartCells = 100

func newGanttCmd(app *App) *cobra.Command {
	var zoom float64
	var showDeps, critical bool
	var svgOut, themePath, from, to string

	cmd := &cobra.Command{
		Use:   "gantt PROJECT",
		Short: "Show the task Gantt chart for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			window, err := parseWindowFlags(from, to)
			if err != nil {
				return err
			}
			opts := service.ScheduleOptions{
				Zoom:             zoom,
				Window:           window,
				ShowDependencies: showDeps,
			}
			if critical {
				opts.CriticalIDs, err = criticalIDs(ctx, app, p.ID)
				if err != nil {
					return err
				}
			}

			if svgOut != "" {
				return writeSVG(ctx, app, chartGantt, p, opts, svgOut, themePath)
			}
			if isatty.IsTerminal(os.Stdout.Fd()) {
				return runChartTUI(app, chartGantt, p, opts)
			}
			return printStaticChart(ctx, app, chartGantt, p, opts)
		},
	}

	cmd.Flags().Float64Var(&zoom, "zoom", 1.0, "Zoom factor")
	cmd.Flags().BoolVar(&showDeps, "deps", true, "Draw dependency connectors")
	cmd.Flags().BoolVar(&critical, "critical", false, "Highlight the critical path")
	cmd.Flags().StringVar(&svgOut, "svg", "", "Write an SVG file instead of rendering to the terminal")
	cmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file for SVG output")
	cmd.Flags().StringVar(&from, "from", "", "Pin the visible range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Pin the visible range end (YYYY-MM-DD)")

	return cmd
}

func newRoadmapCmd(app *App) *cobra.Command {
	var zoom float64
	var svgOut, themePath, from, to string

	cmd := &cobra.Command{
		Use:   "roadmap PROJECT",
		Short: "Show the epic roadmap for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			window, err := parseWindowFlags(from, to)
			if err != nil {
				return err
			}
			opts := service.ScheduleOptions{Zoom: zoom, Window: window}

			if svgOut != "" {
				return writeSVG(ctx, app, chartRoadmap, p, opts, svgOut, themePath)
			}
			if isatty.IsTerminal(os.Stdout.Fd()) {
				return runChartTUI(app, chartRoadmap, p, opts)
			}
			return printStaticChart(ctx, app, chartRoadmap, p, opts)
		},
	}

	cmd.Flags().Float64Var(&zoom, "zoom", 1.0, "Zoom factor")
	cmd.Flags().StringVar(&svgOut, "svg", "", "Write an SVG file instead of rendering to the terminal")
	cmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file for SVG output")
	cmd.Flags().StringVar(&from, "from", "", "Pin the visible range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Pin the visible range end (YYYY-MM-DD)")

	return cmd
}

// parseWindowFlags builds an explicit range override from --from/--to.
// Both must be set together; the engine itself handles an inverted
// pair by flooring the span.
func parseWindowFlags(from, to string) (*timeline.Range, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("--from and --to must be given together")
	}
	start, err := parseDateFlag("from", from)
	if err != nil {
		return nil, err
	}
	end, err := parseDateFlag("to", to)
	if err != nil {
		return nil, err
	}
	return &timeline.Range{Start: *start, End: *end}, nil
}

// criticalIDs computes the critical path over the project's tasks.
func criticalIDs(ctx context.Context, app *App, projectID string) ([]string, error) {
	tasks, err := app.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	deps, err := app.Tasks.ListDependencies(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return scheduler.CriticalPath(tasks, deps), nil
}

func computeLayout(ctx context.Context, app *App, kind chartKind, projectID string, opts service.ScheduleOptions) (*service.ScheduleView, error) {
	if kind == chartRoadmap {
		return app.Schedule.RoadmapLayout(ctx, projectID, opts)
	}
	return app.Schedule.GanttLayout(ctx, projectID, opts)
}

func chartTitle(kind chartKind, p *domain.Project) string {
	if kind == chartRoadmap {
		return fmt.Sprintf("Roadmap · %s %s", p.Key, p.Name)
	}
	return fmt.Sprintf("Gantt · %s %s", p.Key, p.Name)
}

func printStaticChart(ctx context.Context, app *App, kind chartKind, p *domain.Project, opts service.ScheduleOptions) error {
	opts.BaseWidth = staticChartCells
	opts.MinBarWidth = 1

	view, err := computeLayout(ctx, app, kind, p.ID, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s", formatter.FormatChart(view.Layout, chartTitle(kind, p)))
	return nil
}

func runChartTUI(app *App, kind chartKind, p *domain.Project, opts service.ScheduleOptions) error {
	model := newChartModel(app, kind, p, opts)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func writeSVG(ctx context.Context, app *App, kind chartKind, p *domain.Project, opts service.ScheduleOptions, outPath, themePath string) error {
	view, err := computeLayout(ctx, app, kind, p.ID, opts)
	if err != nil {
		return err
	}

	theme, err := svg.LoadTheme(themePath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := svg.NewRenderer(theme).Render(f, chartTitle(kind, p), view.Layout); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
