package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dthomann/planview/internal/db"
	"github.com/dthomann/planview/internal/domain"
)

const taskColumns = `id, project_id, epic_id, sprint_id, seq, title, description,
		status, priority, start_date, end_date, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		nullableStrToValue(t.EpicID),
		nullableStrToValue(t.SprintID),
		t.Seq,
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) GetBySeq(ctx context.Context, projectID string, seq int) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND seq = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, projectID, seq))
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by project: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByEpic(ctx context.Context, epicID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE epic_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, epicID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by epic: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// NextSeq returns the next project-scoped sequential number. Safe for
// the single-writer CLI; the unique index on (project_id, seq) is the
// backstop.
func (r *SQLiteTaskRepo) NextSeq(ctx context.Context, projectID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks WHERE project_id = ?`
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating task seq: %w", err)
	}
	return next, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET epic_id = ?, sprint_id = ?, title = ?, description = ?,
		status = ?, priority = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableStrToValue(t.EpicID),
		nullableStrToValue(t.SprintID),
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	t, err := scanTaskFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTaskFrom(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTaskFrom(s rowScanner) (*domain.Task, error) {
	var t domain.Task
	var statusStr, priorityStr, createdAtStr, updatedAtStr string
	var epicIDStr, sprintIDStr, startDateStr, endDateStr sql.NullString

	if err := s.Scan(&t.ID, &t.ProjectID, &epicIDStr, &sprintIDStr, &t.Seq,
		&t.Title, &t.Description, &statusStr, &priorityStr,
		&startDateStr, &endDateStr, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(statusStr)
	t.Priority = domain.TaskPriority(priorityStr)
	t.EpicID = parseNullableStr(epicIDStr)
	t.SprintID = parseNullableStr(sprintIDStr)
	t.StartDate = parseNullableTime(startDateStr, dateLayout)
	t.EndDate = parseNullableTime(endDateStr, dateLayout)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
