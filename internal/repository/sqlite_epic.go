package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dthomann/planview/internal/db"
	"github.com/dthomann/planview/internal/domain"
)

const epicColumns = `id, project_id, seq, title, description, status, priority,
		start_date, end_date, created_at, updated_at`

// SQLiteEpicRepo implements EpicRepo using a SQLite database.
type SQLiteEpicRepo struct {
	db db.DBTX
}

// NewSQLiteEpicRepo creates a new SQLiteEpicRepo.
func NewSQLiteEpicRepo(conn db.DBTX) *SQLiteEpicRepo {
	return &SQLiteEpicRepo{db: conn}
}

func (r *SQLiteEpicRepo) Create(ctx context.Context, e *domain.Epic) error {
	query := `INSERT INTO epics (` + epicColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.Seq,
		e.Title,
		e.Description,
		string(e.Status),
		string(e.Priority),
		nullableTimeToString(e.StartDate, dateLayout),
		nullableTimeToString(e.EndDate, dateLayout),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting epic: %w", err)
	}
	return nil
}

func (r *SQLiteEpicRepo) GetByID(ctx context.Context, id string) (*domain.Epic, error) {
	query := `SELECT ` + epicColumns + ` FROM epics WHERE id = ?`
	e, err := scanEpicFrom(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("epic: %w", ErrNotFound)
	}
	return e, err
}

func (r *SQLiteEpicRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Epic, error) {
	query := `SELECT ` + epicColumns + ` FROM epics WHERE project_id = ? ORDER BY seq, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing epics: %w", err)
	}
	defer rows.Close()

	var epics []*domain.Epic
	for rows.Next() {
		e, err := scanEpicFrom(rows)
		if err != nil {
			return nil, err
		}
		epics = append(epics, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating epics: %w", err)
	}
	return epics, nil
}

func (r *SQLiteEpicRepo) Update(ctx context.Context, e *domain.Epic) error {
	query := `UPDATE epics SET title = ?, description = ?, status = ?, priority = ?,
		start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.Description,
		string(e.Status),
		string(e.Priority),
		nullableTimeToString(e.StartDate, dateLayout),
		nullableTimeToString(e.EndDate, dateLayout),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating epic: %w", err)
	}
	return nil
}

func (r *SQLiteEpicRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM epics WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting epic: %w", err)
	}
	return nil
}

func scanEpicFrom(s rowScanner) (*domain.Epic, error) {
	var e domain.Epic
	var statusStr, priorityStr, createdAtStr, updatedAtStr string
	var startDateStr, endDateStr sql.NullString

	if err := s.Scan(&e.ID, &e.ProjectID, &e.Seq, &e.Title, &e.Description,
		&statusStr, &priorityStr, &startDateStr, &endDateStr,
		&createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning epic: %w", err)
	}

	e.Status = domain.EpicStatus(statusStr)
	e.Priority = domain.TaskPriority(priorityStr)
	e.StartDate = parseNullableTime(startDateStr, dateLayout)
	e.EndDate = parseNullableTime(endDateStr, dateLayout)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &e, nil
}
