package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/project"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type projectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a new project catalog repository
func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, company_id, name, unit_price, start_time, end_time, color, text_color, abbreviation, created_at, updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.Name,
		&p.UnitPrice,
		&p.StartTime,
		&p.EndTime,
		&p.Color,
		&p.TextColor,
		&p.Abbreviation,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO projects (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, projectColumns, projectColumns)

	created, err := scanProject(q.QueryRow(ctx, query,
		p.ID,
		p.CompanyID,
		p.Name,
		p.UnitPrice,
		p.StartTime,
		p.EndTime,
		p.Color,
		p.TextColor,
		p.Abbreviation,
		now,
		now,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.Project{}, project.ErrProjectNameExists
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string, companyID string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1 AND company_id = $2`, projectColumns)

	p, err := scanProject(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) GetByName(ctx context.Context, name string, companyID string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE name = $1 AND company_id = $2`, projectColumns)

	p, err := scanProject(q.QueryRow(ctx, query, name, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by name: %w", err)
	}

	return p, nil
}

func (r *projectRepository) List(ctx context.Context, companyID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE company_id = $1 ORDER BY name`, projectColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, unit_price = $2, start_time = $3, end_time = $4,
		    color = $5, text_color = $6, abbreviation = $7, updated_at = $8
		WHERE id = $9 AND company_id = $10
	`

	result, err := q.Exec(ctx, query,
		p.Name,
		p.UnitPrice,
		p.StartTime,
		p.EndTime,
		p.Color,
		p.TextColor,
		p.Abbreviation,
		time.Now(),
		p.ID,
		p.CompanyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.ErrProjectNameExists
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return project.ErrProjectReferenced
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}
