package service

import (
	"context"
	"fmt"

	"github.com/dthomann/planview/internal/db"
	"github.com/dthomann/planview/internal/importer"
	"github.com/dthomann/planview/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates an ImportService that persists each import
// in a single transaction. A failed import leaves no partial rows.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		epics := repository.NewSQLiteEpicRepo(tx)
		sprints := repository.NewSQLiteSprintRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		deps := repository.NewSQLiteDependencyRepo(tx)

		if err := projects.Create(ctx, generated.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		for _, epic := range generated.Epics {
			if err := epics.Create(ctx, epic); err != nil {
				return fmt.Errorf("creating epic %q: %w", epic.Title, err)
			}
		}
		for _, sprint := range generated.Sprints {
			if err := sprints.Create(ctx, sprint); err != nil {
				return fmt.Errorf("creating sprint %q: %w", sprint.Name, err)
			}
		}
		for _, task := range generated.Tasks {
			if err := tasks.Create(ctx, task); err != nil {
				return fmt.Errorf("creating task %q: %w", task.Title, err)
			}
		}
		for _, dep := range generated.Dependencies {
			if err := deps.Create(ctx, &dep); err != nil {
				return fmt.Errorf("creating dependency: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Project:         generated.Project,
		EpicCount:       len(generated.Epics),
		SprintCount:     len(generated.Sprints),
		TaskCount:       len(generated.Tasks),
		DependencyCount: len(generated.Dependencies),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
