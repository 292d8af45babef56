package roster

import (
	"context"
)

// AssignmentRepository defines data access for the per-month assignment grid.
// All methods are tenant-scoped; mutations are expected to run inside the
// per-month transaction the service opens.
type AssignmentRepository interface {
	// Append inserts the assignment at the next free position for its
	// (driver, date) and returns it with ID and position filled in.
	Append(ctx context.Context, a Assignment) (Assignment, error)

	// DeleteLast removes the highest-position assignment for (driver, date).
	// Returns false without error when the list is already empty.
	DeleteLast(ctx context.Context, companyID string, year, month int, driverID, date string) (bool, error)

	// DeleteAt removes the assignment at position index and compacts the
	// positions above it. Returns ErrAssignmentNotFound when out of range.
	DeleteAt(ctx context.Context, companyID string, year, month int, driverID, date string, index int) error

	// UpdateStatus mutates only the exception status of the assignment at
	// position index. Returns ErrAssignmentNotFound when out of range.
	UpdateStatus(ctx context.Context, companyID string, year, month int, driverID, date string, index int, status AssignmentStatus) error

	// ListMonth returns every assignment in the month ordered by driver,
	// date, position.
	ListMonth(ctx context.Context, companyID string, year, month int) ([]Assignment, error)

	// ListByDriver returns one driver's assignments for the month.
	ListByDriver(ctx context.Context, companyID string, year, month int, driverID string) ([]Assignment, error)

	// CountByProjectAndDate counts assignments across all drivers matching
	// (project, date), regardless of exception status.
	CountByProjectAndDate(ctx context.Context, companyID string, year, month int, date, projectName string) (int, error)

	// CountsByProjectAndDate returns projectName -> date -> assigned count
	// for the whole month in one read.
	CountsByProjectAndDate(ctx context.Context, companyID string, year, month int) (map[string]map[string]int, error)
}

// RequiredRepository stores the administrator-set required headcount.
type RequiredRepository interface {
	Upsert(ctx context.Context, r RequiredPersonnel) error

	// BulkUpsert applies one count to every listed date of a project.
	BulkUpsert(ctx context.Context, companyID string, year, month int, projectName string, dates []string, count int) error

	// Get returns 0 when no requirement has been set.
	Get(ctx context.Context, companyID string, year, month int, projectName, date string) (int, error)

	ListMonth(ctx context.Context, companyID string, year, month int) ([]RequiredPersonnel, error)
}

// ConfirmationRepository stores the two-flag lifecycle state. Get returns the
// zero value (Draft) for months never confirmed.
type ConfirmationRepository interface {
	Get(ctx context.Context, companyID string, year, month int) (ConfirmationState, error)
	Set(ctx context.Context, state ConfirmationState) error
}
