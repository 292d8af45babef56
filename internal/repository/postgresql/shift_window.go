package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/duty"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftWindowRepository struct {
	db *database.DB
}

// NewShiftWindowRepository creates a new shift window repository
func NewShiftWindowRepository(db *database.DB) duty.ShiftWindowRepository {
	return &shiftWindowRepository{db: db}
}

const shiftWindowColumns = `driver_id, company_id, shift_start, shift_end, is_working, resting, status, status_updated_at, created_at, updated_at`

func scanShiftWindow(row pgx.Row) (duty.ShiftWindow, error) {
	var w duty.ShiftWindow
	var status string
	err := row.Scan(
		&w.DriverID,
		&w.CompanyID,
		&w.ShiftStart,
		&w.ShiftEnd,
		&w.IsWorking,
		&w.Resting,
		&status,
		&w.StatusUpdatedAt,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	w.Status = duty.Status(status)
	return w, err
}

func (r *shiftWindowRepository) Get(ctx context.Context, driverID string, companyID string) (duty.ShiftWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM driver_shift_windows
		WHERE driver_id = $1 AND company_id = $2
	`, shiftWindowColumns)

	w, err := scanShiftWindow(q.QueryRow(ctx, query, driverID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ShiftWindow{}, duty.ErrShiftWindowNotFound
		}
		return duty.ShiftWindow{}, fmt.Errorf("failed to get shift window: %w", err)
	}

	return w, nil
}

func (r *shiftWindowRepository) Upsert(ctx context.Context, w duty.ShiftWindow) (duty.ShiftWindow, error) {
	q := GetQuerier(ctx, r.db)

	if w.Status == "" {
		w.Status = duty.StatusNoSchedule
	}
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO driver_shift_windows (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (driver_id, company_id)
		DO UPDATE SET shift_start = $3, shift_end = $4, is_working = $5, resting = $6, updated_at = $10
		RETURNING %s
	`, shiftWindowColumns, shiftWindowColumns)

	updated, err := scanShiftWindow(q.QueryRow(ctx, query,
		w.DriverID,
		w.CompanyID,
		w.ShiftStart,
		w.ShiftEnd,
		w.IsWorking,
		w.Resting,
		string(w.Status),
		w.StatusUpdatedAt,
		now,
		now,
	))
	if err != nil {
		return duty.ShiftWindow{}, fmt.Errorf("failed to upsert shift window: %w", err)
	}

	return updated, nil
}

func (r *shiftWindowRepository) ListCompany(ctx context.Context, companyID string) ([]duty.ShiftWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM driver_shift_windows
		WHERE company_id = $1
		ORDER BY driver_id
	`, shiftWindowColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift windows: %w", err)
	}
	defer rows.Close()

	return collectShiftWindows(rows)
}

func (r *shiftWindowRepository) ListAll(ctx context.Context) ([]duty.ShiftWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM driver_shift_windows
		ORDER BY company_id, driver_id
	`, shiftWindowColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all shift windows: %w", err)
	}
	defer rows.Close()

	return collectShiftWindows(rows)
}

func collectShiftWindows(rows pgx.Rows) ([]duty.ShiftWindow, error) {
	var windows []duty.ShiftWindow
	for rows.Next() {
		w, err := scanShiftWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift window: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (r *shiftWindowRepository) UpdateDerived(ctx context.Context, driverID string, companyID string, status duty.Status, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `
		UPDATE driver_shift_windows
		SET status = $3, status_updated_at = $4
		WHERE driver_id = $1 AND company_id = $2
	`, driverID, companyID, string(status), at)
	if err != nil {
		return fmt.Errorf("failed to update derived status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return duty.ErrShiftWindowNotFound
	}

	return nil
}
