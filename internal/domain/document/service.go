package document

import "context"

// Service emits structured documents for the external renderer. Emit is
// idempotent per (driver, period, type): re-emission supersedes the prior
// rows instead of deleting them, so staleness stays visible downstream.
type Service interface {
	Emit(ctx context.Context, req EmitRequest) (*Document, error)
	ListPeriod(ctx context.Context, year, month int) ([]DocumentResponse, error)
}
