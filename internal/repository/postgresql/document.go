package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type documentRepository struct {
	db *database.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *database.DB) document.Repository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *document.Document) error {
	q := GetQuerier(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}

	lineItemsJSON, err := json.Marshal(d.LineItems)
	if err != nil {
		return fmt.Errorf("failed to marshal line items: %w", err)
	}

	query := `
		INSERT INTO documents (id, company_id, driver_id, year, month, type, line_items, total, total_hours, superseded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = q.Exec(ctx, query,
		d.ID,
		d.CompanyID,
		d.DriverID,
		d.Year,
		d.Month,
		string(d.Type),
		lineItemsJSON,
		d.Total,
		d.TotalHours,
		d.Superseded,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

func (r *documentRepository) SupersedePrior(ctx context.Context, companyID, driverID string, year, month int, docType document.Type, keepID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE documents
		SET superseded = true
		WHERE company_id = $1 AND driver_id = $2 AND year = $3 AND month = $4 AND type = $5 AND id <> $6
	`

	_, err := q.Exec(ctx, query, companyID, driverID, year, month, string(docType), keepID)
	if err != nil {
		return fmt.Errorf("failed to supersede prior documents: %w", err)
	}

	return nil
}

func (r *documentRepository) ListPeriod(ctx context.Context, companyID string, year, month int) ([]*document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, driver_id, year, month, type, line_items, total, total_hours, superseded, created_at
		FROM documents
		WHERE company_id = $1 AND year = $2 AND month = $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []*document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}

	return documents, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string, companyID string) (*document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, driver_id, year, month, type, line_items, total, total_hours, superseded, created_at
		FROM documents
		WHERE id = $1 AND company_id = $2
	`

	d, err := scanDocument(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrDocumentNotFound
		}
		return nil, err
	}

	return d, nil
}

func scanDocument(row pgx.Row) (*document.Document, error) {
	var d document.Document
	var docType string
	var lineItemsJSON []byte

	if err := row.Scan(
		&d.ID,
		&d.CompanyID,
		&d.DriverID,
		&d.Year,
		&d.Month,
		&docType,
		&lineItemsJSON,
		&d.Total,
		&d.TotalHours,
		&d.Superseded,
		&d.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	d.Type = document.Type(docType)
	if lineItemsJSON != nil {
		if err := json.Unmarshal(lineItemsJSON, &d.LineItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line items: %w", err)
		}
	}

	return &d, nil
}
