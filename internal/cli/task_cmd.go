package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dthomann/planview/internal/cli/formatter"
	"github.com/dthomann/planview/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project, title, description, status, priority, epic, sprint, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long:  "Create a new task. Without --title an interactive form opens on a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			if title == "" {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("--title is required when not running on a terminal")
				}
				if err := taskForm(&title, &description, &priority, &start, &end).Run(); err != nil {
					return err
				}
			}

			startDate, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ID:          uuid.New().String(),
				ProjectID:   p.ID,
				Title:       title,
				Description: description,
				Status:      domain.TaskStatus(status),
				Priority:    domain.TaskPriority(priority),
				StartDate:   startDate,
				EndDate:     endDate,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}

			if epic != "" {
				e, err := resolveEpic(ctx, app, p, epic)
				if err != nil {
					return err
				}
				t.EpicID = &e.ID
			}
			if sprint != "" {
				s, err := resolveSprint(ctx, app, p, sprint)
				if err != nil {
					return err
				}
				t.SprintID = &s.ID
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Created task %s %s\n", formatter.TaskRef(p.Key, t.Seq), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo|in_progress|in_review|done)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&epic, "epic", "", "Epic number or ID")
	cmd.Flags().StringVar(&sprint, "sprint", "", "Sprint name or ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project, epic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			var tasks []*domain.Task
			if epic != "" {
				e, err := resolveEpic(ctx, app, p, epic)
				if err != nil {
					return err
				}
				tasks, err = app.Tasks.ListByEpic(ctx, e.ID)
				if err != nil {
					return err
				}
			} else {
				tasks, err = app.Tasks.ListByProject(ctx, p.ID)
				if err != nil {
					return err
				}
			}

			deps, err := app.Tasks.ListDependencies(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s", formatter.FormatTaskList(p.Key, tasks, deps))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&epic, "epic", "", "Limit to one epic (number or ID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "show TASK",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, p, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTaskDetail(p.Key, t))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var project, title, description, status, priority, epic, sprint, start, end string

	cmd := &cobra.Command{
		Use:   "update TASK",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, p, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("desc") {
				t.Description = description
			}
			if cmd.Flags().Changed("status") {
				t.Status = domain.TaskStatus(status)
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = domain.TaskPriority(priority)
			}
			if cmd.Flags().Changed("epic") {
				if epic == "" {
					t.EpicID = nil
				} else {
					e, err := resolveEpic(ctx, app, p, epic)
					if err != nil {
						return err
					}
					t.EpicID = &e.ID
				}
			}
			if cmd.Flags().Changed("sprint") {
				if sprint == "" {
					t.SprintID = nil
				} else {
					s, err := resolveSprint(ctx, app, p, sprint)
					if err != nil {
						return err
					}
					t.SprintID = &s.ID
				}
			}
			if cmd.Flags().Changed("start") {
				t.StartDate, err = parseDateFlag("start", start)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				t.EndDate, err = parseDateFlag("end", end)
				if err != nil {
					return err
				}
			}
			t.UpdatedAt = time.Now()

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s %s\n", formatter.TaskRef(p.Key, t.Seq), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo|in_progress|in_review|done)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&epic, "epic", "", "Epic number or ID (empty detaches)")
	cmd.Flags().StringVar(&sprint, "sprint", "", "Sprint name or ID (empty detaches)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty clears)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove TASK",
		Short: "Remove a task and its dependency links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, p, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Printf("Removed task %s %s\n", formatter.TaskRef(p.Key, t.Seq), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
