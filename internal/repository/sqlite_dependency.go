package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dthomann/planview/internal/db"
	"github.com/dthomann/planview/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO dependencies (predecessor_task_id, successor_task_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.PredecessorTaskID, d.SuccessorTaskID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorID, successorID string) error {
	query := `DELETE FROM dependencies WHERE predecessor_task_id = ? AND successor_task_id = ?`
	if _, err := r.db.ExecContext(ctx, query, predecessorID, successorID); err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

// ListByProject returns every dependency whose successor belongs to
// the project, in stable (successor seq, predecessor id) order so the
// Gantt edge sequence is deterministic.
func (r *SQLiteDependencyRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error) {
	query := `SELECT d.predecessor_task_id, d.successor_task_id
		FROM dependencies d
		JOIN tasks t ON d.successor_task_id = t.id
		WHERE t.project_id = ?
		ORDER BY t.seq, d.predecessor_task_id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project dependencies: %w", err)
	}
	defer rows.Close()
	return scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListPredecessors(ctx context.Context, taskID string) ([]domain.Dependency, error) {
	query := `SELECT predecessor_task_id, successor_task_id
		FROM dependencies WHERE successor_task_id = ? ORDER BY predecessor_task_id`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing predecessors: %w", err)
	}
	defer rows.Close()
	return scanDependencies(rows)
}

func scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		if err := rows.Scan(&d.PredecessorTaskID, &d.SuccessorTaskID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
