package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type requiredRepository struct {
	db *database.DB
}

// NewRequiredRepository creates a new required-personnel repository
func NewRequiredRepository(db *database.DB) roster.RequiredRepository {
	return &requiredRepository{db: db}
}

func (r *requiredRepository) Upsert(ctx context.Context, rp roster.RequiredPersonnel) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO required_personnel (company_id, year, month, project_name, date, count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, year, month, project_name, date)
		DO UPDATE SET count = $6, updated_at = $7
	`

	_, err := q.Exec(ctx, query, rp.CompanyID, rp.Year, rp.Month, rp.ProjectName, rp.Date, rp.Count, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert required personnel: %w", err)
	}

	return nil
}

func (r *requiredRepository) BulkUpsert(ctx context.Context, companyID string, year, month int, projectName string, dates []string, count int) error {
	if len(dates) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(dates))
	valueArgs := make([]interface{}, 0, len(dates)+6)
	valueArgs = append(valueArgs, companyID, year, month, projectName, count, time.Now())

	for i, date := range dates {
		valueStrings = append(valueStrings, fmt.Sprintf("($1, $2, $3, $4, $%d, $5, $6)", i+7))
		valueArgs = append(valueArgs, date)
	}

	query := fmt.Sprintf(`
		INSERT INTO required_personnel (company_id, year, month, project_name, date, count, updated_at)
		VALUES %s
		ON CONFLICT (company_id, year, month, project_name, date)
		DO UPDATE SET count = EXCLUDED.count, updated_at = EXCLUDED.updated_at
	`, strings.Join(valueStrings, ", "))

	_, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return fmt.Errorf("failed to bulk upsert required personnel: %w", err)
	}

	return nil
}

func (r *requiredRepository) Get(ctx context.Context, companyID string, year, month int, projectName, date string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT count FROM required_personnel
		WHERE company_id = $1 AND year = $2 AND month = $3 AND project_name = $4 AND date = $5
	`, companyID, year, month, projectName, date).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unset means zero required, not an error.
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get required personnel: %w", err)
	}

	return count, nil
}

func (r *requiredRepository) ListMonth(ctx context.Context, companyID string, year, month int) ([]roster.RequiredPersonnel, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT company_id, year, month, project_name, date, count
		FROM required_personnel
		WHERE company_id = $1 AND year = $2 AND month = $3
		ORDER BY project_name, date
	`, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list required personnel: %w", err)
	}
	defer rows.Close()

	var required []roster.RequiredPersonnel
	for rows.Next() {
		var rp roster.RequiredPersonnel
		if err := rows.Scan(&rp.CompanyID, &rp.Year, &rp.Month, &rp.ProjectName, &rp.Date, &rp.Count); err != nil {
			return nil, fmt.Errorf("failed to scan required personnel: %w", err)
		}
		required = append(required, rp)
	}

	return required, nil
}
