package domain

import "time"

type Task struct {
	ID          string
	ProjectID   string
	EpicID      *string
	SprintID    *string
	Seq         int // project-scoped sequential number (WEB-12)
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority

	// Schedule. Both dates are required for the task to occupy a bar on
	// the Gantt chart; a one-sided task is shown as a dateless row.
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSchedule reports whether both schedule dates are set.
func (t *Task) HasSchedule() bool {
	return t.StartDate != nil && t.EndDate != nil
}

// IsTerminal reports whether the task is in a finished state.
func (t *Task) IsTerminal() bool {
	return t.Status == TaskDone
}
