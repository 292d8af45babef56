package roster

import "context"

// RosterService is the assignment grid, reconciliation and confirmation
// lifecycle for one tenant. The tenant comes from JWT claims in ctx; the
// period is explicit on every call.
type RosterService interface {
	MonthGrid(ctx context.Context, year, month int) (MonthGridResponse, error)

	Assign(ctx context.Context, year, month int, req AssignRequest) (AssignmentResponse, error)
	Unassign(ctx context.Context, year, month int, req UnassignRequest) error
	SetExceptionStatus(ctx context.Context, year, month int, req SetExceptionStatusRequest) error

	SetRequired(ctx context.Context, year, month int, req SetRequiredRequest) error
	Reconcile(ctx context.Context, year, month int, date, projectName string) (ReconciliationDelta, error)
	ReconcileMonth(ctx context.Context, year, month int) ([]ReconciliationDelta, error)

	TotalHours(ctx context.Context, year, month int, driverID string) (TotalHoursResponse, error)

	ConfirmShift(ctx context.Context, year, month int) (ConfirmationResponse, error)
	ConfirmResult(ctx context.Context, year, month int) (ConfirmationResponse, error)
	Unconfirm(ctx context.Context, year, month int, req UnconfirmRequest) (ConfirmationResponse, error)
}
