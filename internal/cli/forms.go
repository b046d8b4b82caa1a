package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/dthomann/planview/internal/domain"
)

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field with
// YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-09-30").
		Value(value).
		Validate(validateOptionalDate)
}

// taskForm collects the fields of a new task interactively.
func taskForm(title, description, priority, start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(description).
				Lines(3),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("low", string(domain.PriorityLow)),
					huh.NewOption("medium", string(domain.PriorityMedium)),
					huh.NewOption("high", string(domain.PriorityHigh)),
					huh.NewOption("critical", string(domain.PriorityCritical)),
				).
				Value(priority),
			dateInput("Start date (blank for none)", start),
			dateInput("End date (blank for none)", end),
		),
	).WithShowHelp(false)
}
