package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type confirmationRepository struct {
	db *database.DB
}

// NewConfirmationRepository creates a new confirmation-state repository
func NewConfirmationRepository(db *database.DB) roster.ConfirmationRepository {
	return &confirmationRepository{db: db}
}

func (r *confirmationRepository) Get(ctx context.Context, companyID string, year, month int) (roster.ConfirmationState, error) {
	q := GetQuerier(ctx, r.db)

	var state roster.ConfirmationState
	err := q.QueryRow(ctx, `
		SELECT company_id, year, month, shift_confirmed, result_confirmed, updated_at
		FROM confirmation_states
		WHERE company_id = $1 AND year = $2 AND month = $3
	`, companyID, year, month).Scan(
		&state.CompanyID,
		&state.Year,
		&state.Month,
		&state.ShiftConfirmed,
		&state.ResultConfirmed,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Never-confirmed months are draft.
			return roster.ConfirmationState{CompanyID: companyID, Year: year, Month: month}, nil
		}
		return roster.ConfirmationState{}, fmt.Errorf("failed to get confirmation state: %w", err)
	}

	return state, nil
}

func (r *confirmationRepository) Set(ctx context.Context, state roster.ConfirmationState) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO confirmation_states (company_id, year, month, shift_confirmed, result_confirmed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id, year, month)
		DO UPDATE SET shift_confirmed = $4, result_confirmed = $5, updated_at = $6
	`

	_, err := q.Exec(ctx, query,
		state.CompanyID,
		state.Year,
		state.Month,
		state.ShiftConfirmed,
		state.ResultConfirmed,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to set confirmation state: %w", err)
	}

	return nil
}
