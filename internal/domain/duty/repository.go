package duty

import (
	"context"
	"time"
)

// ShiftWindowRepository stores the per-driver shift window. The sweep is
// read-only against the window fields and only writes the derived status
// columns through UpdateDerived.
type ShiftWindowRepository interface {
	Get(ctx context.Context, driverID string, companyID string) (ShiftWindow, error)

	// Upsert writes the window and clock flags as a whole.
	Upsert(ctx context.Context, w ShiftWindow) (ShiftWindow, error)

	ListCompany(ctx context.Context, companyID string) ([]ShiftWindow, error)

	// ListAll returns every tenant's windows for the sweep.
	ListAll(ctx context.Context) ([]ShiftWindow, error)

	// UpdateDerived writes only status and status_updated_at.
	UpdateDerived(ctx context.Context, driverID string, companyID string, status Status, at time.Time) error
}
