package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/driver"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type driverRepository struct {
	db *database.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *database.DB) driver.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now()

	query := `
		INSERT INTO drivers (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, name, created_at, updated_at
	`

	var created driver.Driver
	err := q.QueryRow(ctx, query, d.ID, d.CompanyID, d.Name, now, now).Scan(
		&created.ID,
		&created.CompanyID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return driver.Driver{}, fmt.Errorf("failed to create driver: %w", err)
	}

	return created, nil
}

func (r *driverRepository) GetByID(ctx context.Context, id string, companyID string) (driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM drivers
		WHERE id = $1 AND company_id = $2
	`

	var d driver.Driver
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&d.ID,
		&d.CompanyID,
		&d.Name,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return driver.Driver{}, driver.ErrDriverNotFound
		}
		return driver.Driver{}, fmt.Errorf("failed to get driver: %w", err)
	}

	return d, nil
}

func (r *driverRepository) List(ctx context.Context, companyID string) ([]driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM drivers
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []driver.Driver
	for rows.Next() {
		var d driver.Driver
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
