package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dthomann/planview/internal/domain"
)

func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project key or ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, err
	}

	// 1. Exact key match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.Key, input) {
			return p, nil
		}
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p, nil
		}
	}

	// 3. UUID prefix match
	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTask accepts a full reference (WEB-12), a bare sequence
// number scoped to the project, or a task UUID.
func resolveTask(ctx context.Context, app *App, project *domain.Project, input string) (*domain.Task, error) {
	if input == "" {
		return nil, fmt.Errorf("task reference is required")
	}

	ref := input
	if prefix := project.Key + "-"; strings.HasPrefix(strings.ToUpper(ref), prefix) {
		ref = ref[len(prefix):]
	}
	if seq, err := strconv.Atoi(ref); err == nil {
		return app.Tasks.GetBySeq(ctx, project.ID, seq)
	}

	return app.Tasks.GetByID(ctx, input)
}

func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q (want YYYY-MM-DD)", name, value)
	}
	return &t, nil
}
