package driver

import "context"

type DriverRepository interface {
	Create(ctx context.Context, d Driver) (Driver, error)
	GetByID(ctx context.Context, id string, companyID string) (Driver, error)
	List(ctx context.Context, companyID string) ([]Driver, error)
}
