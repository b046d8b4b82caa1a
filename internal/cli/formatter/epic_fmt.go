package formatter

import (
	"fmt"

	"github.com/dthomann/planview/internal/domain"
)

// FormatEpicList renders epics as a table.
func FormatEpicList(epics []*domain.Epic) string {
	if len(epics) == 0 {
		return Dim("No epics yet.") + "\n"
	}

	rows := make([][]string, 0, len(epics))
	for _, e := range epics {
		rows = append(rows, []string{
			Bold(fmt.Sprintf("#%d", e.Seq)),
			PadRight(e.Title, 40),
			StatusPill(string(e.Status)),
			PriorityStyle(e.Priority).Render(string(e.Priority)),
			FormatDate(e.StartDate),
			FormatDate(e.EndDate),
		})
	}
	return RenderTable([]string{"#", "EPIC", "STATUS", "PRIORITY", "START", "END"}, rows)
}

// FormatSprintList renders sprints as a table.
func FormatSprintList(sprints []*domain.Sprint) string {
	if len(sprints) == 0 {
		return Dim("No sprints yet.") + "\n"
	}

	rows := make([][]string, 0, len(sprints))
	for _, s := range sprints {
		rows = append(rows, []string{
			PadRight(s.Name, 30),
			StatusPill(string(s.Status)),
			FormatDate(s.StartDate),
			FormatDate(s.EndDate),
		})
	}
	return RenderTable([]string{"SPRINT", "STATUS", "START", "END"}, rows)
}
