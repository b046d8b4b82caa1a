// Package scheduler derives schedule analytics from a project's tasks
// and dependency edges.
package scheduler

import (
	"time"

	"github.com/dthomann/planview/internal/domain"
)

const day = 24 * time.Hour

// CriticalPath returns the task ids on the longest-duration dependency
// chain, in predecessor-to-successor order. Duration is the inclusive
// day span of a task's schedule; a task without both dates counts as
// one day so it can still anchor a chain. Ties resolve to the earlier
// task in input order, which callers pass sorted by sequence number.
//
// The dependency graph is kept acyclic at write time; a cycle that
// slips through is treated as a chain break rather than a fatal state.
func CriticalPath(tasks []*domain.Task, deps []domain.Dependency) []string {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	succ := make(map[string][]string, len(deps))
	for _, d := range deps {
		if byID[d.PredecessorTaskID] == nil || byID[d.SuccessorTaskID] == nil {
			continue
		}
		succ[d.PredecessorTaskID] = append(succ[d.PredecessorTaskID], d.SuccessorTaskID)
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(tasks))
	chain := make(map[string]int, len(tasks))
	next := make(map[string]string, len(tasks))

	// chainFrom returns the total days of the longest chain starting at
	// id, memoized per task.
	var chainFrom func(id string) int
	chainFrom = func(id string) int {
		switch state[id] {
		case visiting:
			return 0
		case done:
			return chain[id]
		}
		state[id] = visiting

		best, bestNext := 0, ""
		for _, s := range succ[id] {
			if l := chainFrom(s); l > best {
				best, bestNext = l, s
			}
		}

		total := taskDays(byID[id]) + best
		chain[id] = total
		if bestNext != "" {
			next[id] = bestNext
		}
		state[id] = done
		return total
	}

	start, best := "", 0
	for _, t := range tasks {
		if l := chainFrom(t.ID); l > best {
			start, best = t.ID, l
		}
	}
	if start == "" {
		return nil
	}

	var path []string
	seen := make(map[string]bool, len(tasks))
	for id := start; id != "" && !seen[id]; id = next[id] {
		seen[id] = true
		path = append(path, id)
	}
	return path
}

func taskDays(t *domain.Task) int {
	if t == nil {
		return 0
	}
	if t.StartDate == nil || t.EndDate == nil {
		return 1
	}
	d := int(t.EndDate.Sub(*t.StartDate)/day) + 1
	if d < 1 {
		d = 1
	}
	return d
}
