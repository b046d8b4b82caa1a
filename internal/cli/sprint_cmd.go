package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dthomann/planview/internal/cli/formatter"
	"github.com/dthomann/planview/internal/domain"
)

// resolveSprint matches a sprint by exact name (case-insensitive) or
// UUID prefix within the project.
func resolveSprint(ctx context.Context, app *App, project *domain.Project, input string) (*domain.Sprint, error) {
	if input == "" {
		return nil, fmt.Errorf("sprint reference is required")
	}

	sprints, err := app.Sprints.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	for _, s := range sprints {
		if strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}
	for _, s := range sprints {
		if s.ID == input || strings.HasPrefix(s.ID, input) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sprint not found: %q", input)
}

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints",
	}

	cmd.AddCommand(
		newSprintAddCmd(app),
		newSprintListCmd(app),
		newSprintUpdateCmd(app),
		newSprintRemoveCmd(app),
	)

	return cmd
}

func newSprintAddCmd(app *App) *cobra.Command {
	var project, name, epic, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			startDate, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}

			s := &domain.Sprint{
				ID:        uuid.New().String(),
				ProjectID: p.ID,
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}

			if epic != "" {
				e, err := resolveEpic(ctx, app, p, epic)
				if err != nil {
					return err
				}
				s.EpicID = &e.ID
			}

			if err := app.Sprints.Create(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Created sprint %s in %s\n", s.Name, p.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&epic, "epic", "", "Epic number or ID to attach the sprint to")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSprintListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			sprints, err := app.Sprints.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s", formatter.FormatSprintList(sprints))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSprintUpdateCmd(app *App) *cobra.Command {
	var project, name, status, start, end string

	cmd := &cobra.Command{
		Use:   "update SPRINT",
		Short: "Update a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			s, err := resolveSprint(ctx, app, p, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			if cmd.Flags().Changed("status") {
				s.Status = domain.SprintStatus(status)
			}
			if cmd.Flags().Changed("start") {
				s.StartDate, err = parseDateFlag("start", start)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				s.EndDate, err = parseDateFlag("end", end)
				if err != nil {
					return err
				}
			}
			s.UpdatedAt = time.Now()

			if err := app.Sprints.Update(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Updated sprint %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&status, "status", "", "Status (planned|active|closed)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty clears)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSprintRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove SPRINT",
		Short: "Remove a sprint (tasks are detached, not deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			s, err := resolveSprint(ctx, app, p, args[0])
			if err != nil {
				return err
			}
			if err := app.Sprints.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Printf("Removed sprint %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
