package project

import (
	"context"
)

// ProjectRepository defines data access methods for the project catalog.
// All methods include companyID to prevent cross-company data access.
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)

	GetByID(ctx context.Context, id string, companyID string) (Project, error)

	// GetByName is the assign-time catalog read: the unit price and window
	// returned here get snapshotted onto the assignment.
	GetByName(ctx context.Context, name string, companyID string) (Project, error)

	List(ctx context.Context, companyID string) ([]Project, error)

	Update(ctx context.Context, p Project) error

	Delete(ctx context.Context, id string, companyID string) error
}
