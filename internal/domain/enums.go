package domain

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectOnHold   ProjectStatus = "on_hold"
	ProjectDone     ProjectStatus = "done"
	ProjectArchived ProjectStatus = "archived"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

type EpicStatus string

const (
	EpicPlanned    EpicStatus = "planned"
	EpicInProgress EpicStatus = "in_progress"
	EpicDone       EpicStatus = "done"
)

type SprintStatus string

const (
	SprintPlanned SprintStatus = "planned"
	SprintActive  SprintStatus = "active"
	SprintClosed  SprintStatus = "closed"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"todo": true, "in_progress": true, "in_review": true, "done": true,
}

// ValidTaskPriorities is the canonical set of accepted task priority strings.
var ValidTaskPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// ValidEpicStatuses is the canonical set of accepted epic status strings.
var ValidEpicStatuses = map[string]bool{
	"planned": true, "in_progress": true, "done": true,
}
