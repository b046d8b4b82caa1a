package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dthomann/planview/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Epics    service.EpicService
	Sprints  service.SprintService
	Tasks    service.TaskService
	Schedule service.ScheduleService
	Import   service.ImportService
}

// NewRootCmd creates the top-level "planview" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planview",
		Short: "Sprint and roadmap planner with Gantt charts",
	}

	// Accept snake_case spellings of flags (--start_date == --start-date).
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newProjectCmd(app),
		newEpicCmd(app),
		newSprintCmd(app),
		newTaskCmd(app),
		newDepCmd(app),
		newGanttCmd(app),
		newRoadmapCmd(app),
		newImportCmd(app),
	)

	return root
}
