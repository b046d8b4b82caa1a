package domain

import "time"

type Epic struct {
	ID          string
	ProjectID   string
	Seq         int
	Title       string
	Description string
	Status      EpicStatus
	Priority    TaskPriority
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasSchedule reports whether both schedule dates are set.
func (e *Epic) HasSchedule() bool {
	return e.StartDate != nil && e.EndDate != nil
}
