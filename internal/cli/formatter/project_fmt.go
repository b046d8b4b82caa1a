package formatter

import (
	"fmt"
	"strings"

	"github.com/dthomann/planview/internal/domain"
)

// FormatProjectList renders projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects. Create one with: planview project add") + "\n"
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Bold(p.Key),
			p.Name,
			StatusPill(string(p.Status)),
			p.CreatedAt.Format(dateLayout),
		})
	}
	return RenderTable([]string{"KEY", "NAME", "STATUS", "CREATED"}, rows)
}

// FormatProjectDetail renders a single project with its counts.
func FormatProjectDetail(p *domain.Project, epicCount, sprintCount, taskCount int) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s · %s", p.Key, p.Name)))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Status"), StatusPill(string(p.Status))))
	b.WriteString(fmt.Sprintf("%s  %d epics · %d sprints · %d tasks\n",
		Dim("Scope "), epicCount, sprintCount, taskCount))
	if p.ArchivedAt != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Archived"), p.ArchivedAt.Format(dateLayout)))
	}
	return b.String()
}
