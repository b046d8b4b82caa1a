package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProject(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported project %s [%s]: %d epics, %d sprints, %d tasks, %d dependencies\n",
				result.Project.Name, result.Project.Key,
				result.EpicCount, result.SprintCount, result.TaskCount, result.DependencyCount)
			return nil
		},
	}
}
