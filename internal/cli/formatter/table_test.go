package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dthomann/planview/internal/domain"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"KEY", "NAME"},
		[][]string{
			{"WEB", "Website relaunch"},
			{"PLAT", "Platform"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Website relaunch")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatProjectList_Empty(t *testing.T) {
	assert.Contains(t, FormatProjectList(nil), "No projects")
}

func TestFormatTaskList_DependencyCounts(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	tasks := []*domain.Task{
		{ID: "t1", Seq: 1, Title: "Schema", Status: domain.TaskDone, Priority: domain.PriorityHigh, StartDate: &start, EndDate: &end},
		{ID: "t2", Seq: 2, Title: "API", Status: domain.TaskTodo, Priority: domain.PriorityMedium},
	}
	deps := []domain.Dependency{{PredecessorTaskID: "t1", SuccessorTaskID: "t2"}}

	out := FormatTaskList("WEB", tasks, deps)

	assert.Contains(t, out, "WEB-1")
	assert.Contains(t, out, "WEB-2")
	assert.Contains(t, out, "after 1")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "—", "missing dates render as a dash")
}

func TestFormatDate_Nil(t *testing.T) {
	assert.Contains(t, FormatDate(nil), "—")
}
