package domain

// Dependency records that the successor task cannot start before the
// predecessor task finishes.
type Dependency struct {
	PredecessorTaskID string
	SuccessorTaskID   string
}
