package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dthomann/planview/internal/db"
	"github.com/dthomann/planview/internal/domain"
)

const sprintColumns = `id, project_id, epic_id, name, status, start_date, end_date, created_at, updated_at`

// SQLiteSprintRepo implements SprintRepo using a SQLite database.
type SQLiteSprintRepo struct {
	db db.DBTX
}

// NewSQLiteSprintRepo creates a new SQLiteSprintRepo.
func NewSQLiteSprintRepo(conn db.DBTX) *SQLiteSprintRepo {
	return &SQLiteSprintRepo{db: conn}
}

func (r *SQLiteSprintRepo) Create(ctx context.Context, s *domain.Sprint) error {
	query := `INSERT INTO sprints (` + sprintColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		nullableStrToValue(s.EpicID),
		s.Name,
		string(s.Status),
		nullableTimeToString(s.StartDate, dateLayout),
		nullableTimeToString(s.EndDate, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = ?`
	s, err := scanSprintFrom(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sprint: %w", ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSprintRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE project_id = ? ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*domain.Sprint
	for rows.Next() {
		s, err := scanSprintFrom(rows)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

func (r *SQLiteSprintRepo) Update(ctx context.Context, s *domain.Sprint) error {
	query := `UPDATE sprints SET epic_id = ?, name = ?, status = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableStrToValue(s.EpicID),
		s.Name,
		string(s.Status),
		nullableTimeToString(s.StartDate, dateLayout),
		nullableTimeToString(s.EndDate, dateLayout),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sprints WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	return nil
}

func scanSprintFrom(s rowScanner) (*domain.Sprint, error) {
	var sp domain.Sprint
	var statusStr, createdAtStr, updatedAtStr string
	var epicIDStr, startDateStr, endDateStr sql.NullString

	if err := s.Scan(&sp.ID, &sp.ProjectID, &epicIDStr, &sp.Name, &statusStr,
		&startDateStr, &endDateStr, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}

	sp.Status = domain.SprintStatus(statusStr)
	sp.EpicID = parseNullableStr(epicIDStr)
	sp.StartDate = parseNullableTime(startDateStr, dateLayout)
	sp.EndDate = parseNullableTime(endDateStr, dateLayout)

	var parseErr error
	sp.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	sp.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &sp, nil
}
