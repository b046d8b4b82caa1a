package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/google/uuid"
)

var testKeyCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithKey(key string) ProjectOption {
	return func(p *domain.Project) {
		p.Key = key
	}
}

func defaultKey(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 2; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 2 {
		letters = append(letters, 'X')
	}
	// Counter keeps keys unique across fixtures within one test db.
	n := testKeyCounter.Add(1)
	alpha := func(v int64) byte { return byte('A' + v%26) }
	return fmt.Sprintf("%s%c%c", string(letters), alpha(n/26), alpha(n%26))
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Key:       defaultKey(name),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = &start
		t.EndDate = &end
	}
}

func WithTaskStart(start time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = &start
	}
}

func WithEpicID(id string) TaskOption {
	return func(t *domain.Task) {
		t.EpicID = &id
	}
}

func WithSeq(seq int) TaskOption {
	return func(t *domain.Task) {
		t.Seq = seq
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Epic options
type EpicOption func(*domain.Epic)

func WithEpicStatus(s domain.EpicStatus) EpicOption {
	return func(e *domain.Epic) {
		e.Status = s
	}
}

func WithEpicDates(start, end time.Time) EpicOption {
	return func(e *domain.Epic) {
		e.StartDate = &start
		e.EndDate = &end
	}
}

func NewTestEpic(projectID, title string, opts ...EpicOption) *domain.Epic {
	now := time.Now().UTC()
	e := &domain.Epic{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    domain.EpicPlanned,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintDates(start, end time.Time) SprintOption {
	return func(s *domain.Sprint) {
		s.StartDate = &start
		s.EndDate = &end
	}
}

func WithSprintEpic(epicID string) SprintOption {
	return func(s *domain.Sprint) {
		s.EpicID = &epicID
	}
}

func NewTestSprint(projectID, name string, opts ...SprintOption) *domain.Sprint {
	now := time.Now().UTC()
	s := &domain.Sprint{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.SprintPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
