package formatter

import (
	"fmt"
	"strings"

	"github.com/dthomann/planview/internal/domain"
)

// TaskRef renders the project-scoped task reference, e.g. WEB-12.
func TaskRef(projectKey string, seq int) string {
	return fmt.Sprintf("%s-%d", projectKey, seq)
}

// FormatTaskList renders tasks as a table. Dependency counts come from
// the project's edge list keyed by successor task id; pass nil to omit.
func FormatTaskList(projectKey string, tasks []*domain.Task, deps []domain.Dependency) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet.") + "\n"
	}

	predCount := make(map[string]int, len(deps))
	for _, d := range deps {
		predCount[d.SuccessorTaskID]++
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		after := ""
		if n := predCount[t.ID]; n > 0 {
			after = Dim(fmt.Sprintf("after %d", n))
		}
		rows = append(rows, []string{
			Bold(TaskRef(projectKey, t.Seq)),
			PadRight(t.Title, 40),
			StatusPill(string(t.Status)),
			PriorityStyle(t.Priority).Render(string(t.Priority)),
			FormatDate(t.StartDate),
			FormatDate(t.EndDate),
			after,
		})
	}
	return RenderTable([]string{"REF", "TITLE", "STATUS", "PRIORITY", "START", "END", "DEPS"}, rows)
}

// FormatTaskDetail renders a single task.
func FormatTaskDetail(projectKey string, t *domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s · %s", TaskRef(projectKey, t.Seq), t.Title)))
	b.WriteString("\n")
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Status  "), StatusPill(string(t.Status))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Priority"),
		PriorityStyle(t.Priority).Render(string(t.Priority))))
	b.WriteString(fmt.Sprintf("%s  %s → %s\n", Dim("Schedule"),
		FormatDate(t.StartDate), FormatDate(t.EndDate)))
	return b.String()
}
