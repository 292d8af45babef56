package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type assignmentRepository struct {
	db *database.DB
}

// NewAssignmentRepository creates a new assignment grid repository
func NewAssignmentRepository(db *database.DB) roster.AssignmentRepository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `id, company_id, year, month, driver_id, date, project_name, unit_price, status, position, created_at, updated_at`

func (r *assignmentRepository) Append(ctx context.Context, a roster.Assignment) (roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()

	// Position is allocated from the current maximum for (driver, date).
	// Callers hold the per-month advisory lock, so this cannot race.
	query := fmt.Sprintf(`
		INSERT INTO roster_assignments (%s)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9,
		       COALESCE(MAX(position) + 1, 0), $10, $11
		FROM roster_assignments
		WHERE company_id = $2 AND year = $3 AND month = $4 AND driver_id = $5 AND date = $6
		RETURNING %s
	`, assignmentColumns, assignmentColumns)

	var created roster.Assignment
	err := q.QueryRow(ctx, query,
		a.ID,
		a.CompanyID,
		a.Year,
		a.Month,
		a.DriverID,
		a.Date,
		a.ProjectName,
		a.UnitPrice,
		string(a.Status),
		now,
		now,
	).Scan(
		&created.ID,
		&created.CompanyID,
		&created.Year,
		&created.Month,
		&created.DriverID,
		&created.Date,
		&created.ProjectName,
		&created.UnitPrice,
		&created.Status,
		&created.Position,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return roster.Assignment{}, fmt.Errorf("failed to append assignment: %w", err)
	}

	return created, nil
}

func (r *assignmentRepository) DeleteLast(ctx context.Context, companyID string, year, month int, driverID, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM roster_assignments
		WHERE id = (
			SELECT id FROM roster_assignments
			WHERE company_id = $1 AND year = $2 AND month = $3 AND driver_id = $4 AND date = $5
			ORDER BY position DESC
			LIMIT 1
		)
	`

	result, err := q.Exec(ctx, query, companyID, year, month, driverID, date)
	if err != nil {
		return false, fmt.Errorf("failed to delete last assignment: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *assignmentRepository) DeleteAt(ctx context.Context, companyID string, year, month int, driverID, date string, index int) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `
		DELETE FROM roster_assignments
		WHERE company_id = $1 AND year = $2 AND month = $3 AND driver_id = $4 AND date = $5 AND position = $6
	`, companyID, year, month, driverID, date, index)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return roster.ErrAssignmentNotFound
	}

	// Compact positions above the removed entry so indices stay dense.
	_, err = q.Exec(ctx, `
		UPDATE roster_assignments
		SET position = position - 1, updated_at = $7
		WHERE company_id = $1 AND year = $2 AND month = $3 AND driver_id = $4 AND date = $5 AND position > $6
	`, companyID, year, month, driverID, date, index, time.Now())
	if err != nil {
		return fmt.Errorf("failed to compact assignment positions: %w", err)
	}

	return nil
}

func (r *assignmentRepository) UpdateStatus(ctx context.Context, companyID string, year, month int, driverID, date string, index int, status roster.AssignmentStatus) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `
		UPDATE roster_assignments
		SET status = $7, updated_at = $8
		WHERE company_id = $1 AND year = $2 AND month = $3 AND driver_id = $4 AND date = $5 AND position = $6
	`, companyID, year, month, driverID, date, index, string(status), time.Now())
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return roster.ErrAssignmentNotFound
	}

	return nil
}

func (r *assignmentRepository) ListMonth(ctx context.Context, companyID string, year, month int) ([]roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM roster_assignments
		WHERE company_id = $1 AND year = $2 AND month = $3
		ORDER BY driver_id, date, position
	`, assignmentColumns)

	return r.queryAssignments(ctx, q, query, companyID, year, month)
}

func (r *assignmentRepository) ListByDriver(ctx context.Context, companyID string, year, month int, driverID string) ([]roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM roster_assignments
		WHERE company_id = $1 AND year = $2 AND month = $3 AND driver_id = $4
		ORDER BY date, position
	`, assignmentColumns)

	return r.queryAssignments(ctx, q, query, companyID, year, month, driverID)
}

func (r *assignmentRepository) queryAssignments(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]roster.Assignment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []roster.Assignment
	for rows.Next() {
		var a roster.Assignment
		if err := rows.Scan(
			&a.ID,
			&a.CompanyID,
			&a.Year,
			&a.Month,
			&a.DriverID,
			&a.Date,
			&a.ProjectName,
			&a.UnitPrice,
			&a.Status,
			&a.Position,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *assignmentRepository) CountByProjectAndDate(ctx context.Context, companyID string, year, month int, date, projectName string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM roster_assignments
		WHERE company_id = $1 AND year = $2 AND month = $3 AND date = $4 AND project_name = $5
	`, companyID, year, month, date, projectName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	return count, nil
}

func (r *assignmentRepository) CountsByProjectAndDate(ctx context.Context, companyID string, year, month int) (map[string]map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT project_name, date, COUNT(*)
		FROM roster_assignments
		WHERE company_id = $1 AND year = $2 AND month = $3
		GROUP BY project_name, date
	`, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments by project and date: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]map[string]int)
	for rows.Next() {
		var projectName, date string
		var count int
		if err := rows.Scan(&projectName, &date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan assignment count: %w", err)
		}
		if counts[projectName] == nil {
			counts[projectName] = make(map[string]int)
		}
		counts[projectName][date] = count
	}

	return counts, nil
}
