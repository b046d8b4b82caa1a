package domain

import "time"

// Sprint is a fixed iteration window inside a project. Sprint windows
// widen the roadmap's visible range even when no epic reaches them.
type Sprint struct {
	ID        string
	ProjectID string
	EpicID    *string
	Name      string
	Status    SprintStatus
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
