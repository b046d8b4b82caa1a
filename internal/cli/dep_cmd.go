package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dthomann/planview/internal/cli/formatter"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage task dependencies",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepListCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "add PREDECESSOR SUCCESSOR",
		Short: "Record that SUCCESSOR depends on PREDECESSOR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			pred, err := resolveTask(ctx, app, p, args[0])
			if err != nil {
				return err
			}
			succ, err := resolveTask(ctx, app, p, args[1])
			if err != nil {
				return err
			}

			if err := app.Tasks.AddDependency(ctx, pred.ID, succ.ID); err != nil {
				return err
			}

			fmt.Printf("%s now depends on %s\n",
				formatter.TaskRef(p.Key, succ.Seq), formatter.TaskRef(p.Key, pred.Seq))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove PREDECESSOR SUCCESSOR",
		Short: "Remove a dependency link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			pred, err := resolveTask(ctx, app, p, args[0])
			if err != nil {
				return err
			}
			succ, err := resolveTask(ctx, app, p, args[1])
			if err != nil {
				return err
			}

			if err := app.Tasks.RemoveDependency(ctx, pred.ID, succ.ID); err != nil {
				return err
			}

			fmt.Printf("%s no longer depends on %s\n",
				formatter.TaskRef(p.Key, succ.Seq), formatter.TaskRef(p.Key, pred.Seq))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dependency links in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			deps, err := app.Tasks.ListDependencies(ctx, p.ID)
			if err != nil {
				return err
			}
			if len(deps) == 0 {
				fmt.Println(formatter.Dim("No dependencies yet."))
				return nil
			}

			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			seqByID := make(map[string]int, len(tasks))
			for _, t := range tasks {
				seqByID[t.ID] = t.Seq
			}

			for _, d := range deps {
				fmt.Printf("%s -> %s\n",
					formatter.TaskRef(p.Key, seqByID[d.PredecessorTaskID]),
					formatter.TaskRef(p.Key, seqByID[d.SuccessorTaskID]))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
