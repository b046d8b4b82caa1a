package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dthomann/planview/internal/cli/formatter"
	"github.com/dthomann/planview/internal/domain"
)

// resolveEpic accepts a project-scoped epic number or an epic UUID.
func resolveEpic(ctx context.Context, app *App, project *domain.Project, input string) (*domain.Epic, error) {
	if input == "" {
		return nil, fmt.Errorf("epic reference is required")
	}

	epics, err := app.Epics.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	if seq, err := strconv.Atoi(input); err == nil {
		for _, e := range epics {
			if e.Seq == seq {
				return e, nil
			}
		}
		return nil, fmt.Errorf("no epic #%d in project %s", seq, project.Key)
	}

	for _, e := range epics {
		if e.ID == input || strings.HasPrefix(e.ID, input) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("epic not found: %q", input)
}

func newEpicCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epic",
		Short: "Manage epics",
	}

	cmd.AddCommand(
		newEpicAddCmd(app),
		newEpicListCmd(app),
		newEpicUpdateCmd(app),
		newEpicRemoveCmd(app),
	)

	return cmd
}

func newEpicAddCmd(app *App) *cobra.Command {
	var project, title, description, priority, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new epic",
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

			e := &domain.Epic{
				ID:          uuid.New().String(),
				ProjectID:   p.ID,
				Title:       title,
				Description: description,
				Priority:    domain.TaskPriority(priority),
				StartDate:   startDate,
				EndDate:     endDate,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}

			if err := app.Epics.Create(ctx, e); err != nil {
				return err
			}

			fmt.Printf("Created epic #%d %s in %s\n", e.Seq, e.Title, p.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&title, "title", "", "Epic title")
	cmd.Flags().StringVar(&description, "desc", "", "Epic description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newEpicListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List epics in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			epics, err := app.Epics.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s", formatter.FormatEpicList(epics))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newEpicUpdateCmd(app *App) *cobra.Command {
	var project, title, description, status, priority, start, end string

	cmd := &cobra.Command{
		Use:   "update EPIC",
		Short: "Update an epic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			e, err := resolveEpic(ctx, app, p, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				e.Title = title
			}
			if cmd.Flags().Changed("desc") {
				e.Description = description
			}
			if cmd.Flags().Changed("status") {
				e.Status = domain.EpicStatus(status)
			}
			if cmd.Flags().Changed("priority") {
				e.Priority = domain.TaskPriority(priority)
			}
			if cmd.Flags().Changed("start") {
				e.StartDate, err = parseDateFlag("start", start)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				e.EndDate, err = parseDateFlag("end", end)
				if err != nil {
					return err
				}
			}
			e.UpdatedAt = time.Now()

			if err := app.Epics.Update(ctx, e); err != nil {
				return err
			}

			fmt.Printf("Updated epic #%d %s\n", e.Seq, e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&title, "title", "", "Epic title")
	cmd.Flags().StringVar(&description, "desc", "", "Epic description")
	cmd.Flags().StringVar(&status, "status", "", "Status (planned|in_progress|done)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty clears)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newEpicRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove EPIC",
		Short: "Remove an epic (tasks are detached, not deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			e, err := resolveEpic(ctx, app, p, args[0])
			if err != nil {
				return err
			}
			if err := app.Epics.Delete(ctx, e.ID); err != nil {
				return err
			}
			fmt.Printf("Removed epic #%d %s\n", e.Seq, e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
