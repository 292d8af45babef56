package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error

	// SupersedePrior marks every earlier document for the same (driver,
	// period, type) superseded, excluding keepID.
	SupersedePrior(ctx context.Context, companyID, driverID string, year, month int, docType Type, keepID string) error

	ListPeriod(ctx context.Context, companyID string, year, month int) ([]*Document, error)

	GetByID(ctx context.Context, id string, companyID string) (*Document, error)
}
