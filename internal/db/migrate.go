package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so
// the full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		key         TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','on_hold','done','archived')),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS epics (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL DEFAULT 0,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'planned'
		            CHECK(status IN ('planned','in_progress','done')),
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high','critical')),
		start_date  TEXT,
		end_date    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_epics_project ON epics(project_id)`,

	`CREATE TABLE IF NOT EXISTS sprints (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		epic_id    TEXT REFERENCES epics(id) ON DELETE SET NULL,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'planned'
		           CHECK(status IN ('planned','active','closed')),
		start_date TEXT,
		end_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sprints_project ON sprints(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sprints_epic ON sprints(epic_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		epic_id     TEXT REFERENCES epics(id) ON DELETE SET NULL,
		sprint_id   TEXT REFERENCES sprints(id) ON DELETE SET NULL,
		seq         INTEGER NOT NULL DEFAULT 0,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'todo'
		            CHECK(status IN ('todo','in_progress','in_review','done')),
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high','critical')),
		start_date  TEXT,
		end_date    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_epic ON tasks(epic_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_sprint ON tasks(sprint_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_project_seq ON tasks(project_id, seq)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		predecessor_task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		successor_task_id   TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (predecessor_task_id, successor_task_id),
		CHECK (predecessor_task_id != successor_task_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_successor ON dependencies(successor_task_id)`,
}
