package driver

import "context"

type Service interface {
	CreateDriver(ctx context.Context, req CreateDriverRequest) (DriverResponse, error)
	GetDriver(ctx context.Context, id string) (DriverResponse, error)
	ListDrivers(ctx context.Context) ([]DriverResponse, error)
}
