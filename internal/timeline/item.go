// Package timeline computes schedule-view geometry: a visible time
// window over a set of dated items, a date-to-coordinate mapping
// under zoom, axis markers, per-item bars, dependency connectors and
// overlay positions. Every function is pure and total; the package
// performs no I/O and reads no clocks.
package timeline

import (
	"time"

	"github.com/dthomann/planview/internal/domain"
)

// Item is the unit laid out by the engine: a task or an epic reduced
// to the fields geometry cares about. Status and Priority are opaque
// here; renderers use them for styling only.
type Item struct {
	ID       string
	Title    string
	Status   string
	Priority string

	// Both dates must be set for the item to occupy a bar. A one-sided
	// item is dateless for geometry purposes.
	Start *time.Time
	End   *time.Time

	// DependsOn lists prerequisite item IDs in display order.
	DependsOn []string
}

// Dated reports whether the item has both schedule dates.
func (it Item) Dated() bool {
	return it.Start != nil && it.End != nil
}

// ItemFromTask converts a task and its prerequisite IDs into an Item.
func ItemFromTask(t *domain.Task, dependsOn []string) Item {
	return Item{
		ID:        t.ID,
		Title:     t.Title,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		Start:     t.StartDate,
		End:       t.EndDate,
		DependsOn: dependsOn,
	}
}

// ItemFromEpic converts an epic into an Item. Epics carry no
// dependency edges on the roadmap.
func ItemFromEpic(e *domain.Epic) Item {
	return Item{
		ID:       e.ID,
		Title:    e.Title,
		Status:   string(e.Status),
		Priority: string(e.Priority),
		Start:    e.StartDate,
		End:      e.EndDate,
	}
}
