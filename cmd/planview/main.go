package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dthomann/planview/internal/cli"
	"github.com/dthomann/planview/internal/db"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.planview/planview.db
	dbPath := os.Getenv("PLANVIEW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".planview", "planview.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	epicRepo := repository.NewSQLiteEpicRepo(database)
	sprintRepo := repository.NewSQLiteSprintRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// PLANVIEW_LOG enables structured use-case logging on stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("PLANVIEW_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Epics:    service.NewEpicService(epicRepo),
		Sprints:  service.NewSprintService(sprintRepo),
		Tasks:    service.NewTaskService(taskRepo, depRepo),
		Schedule: service.NewScheduleService(projectRepo, epicRepo, sprintRepo, taskRepo, depRepo, observers...),
		Import:   service.NewImportService(uow),
	}

	return cli.NewRootCmd(app).Execute()
}
