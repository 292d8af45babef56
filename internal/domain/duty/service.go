package duty

import "context"

// DutyService covers the driver-facing clock actions and the periodic
// status sweep. Clock actions identify the driver from JWT claims.
type DutyService interface {
	SetWindow(ctx context.Context, req SetWindowRequest) (ShiftWindowResponse, error)
	ClockIn(ctx context.Context) (ShiftWindowResponse, error)
	StartBreak(ctx context.Context) (ShiftWindowResponse, error)
	EndBreak(ctx context.Context) (ShiftWindowResponse, error)
	ClockOut(ctx context.Context) (ShiftWindowResponse, error)

	// CompanyStatus is the operator read of every driver's derived state.
	CompanyStatus(ctx context.Context) (CompanyStatusResponse, error)

	// Sweep recomputes every driver's status across all tenants and hands
	// alerts to the notification layer. Alert delivery is best-effort per
	// driver; one failure never aborts the rest of the sweep.
	Sweep(ctx context.Context) error
}
