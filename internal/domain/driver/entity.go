package driver

import "time"

// Driver is identity only. All scheduling data is keyed by driver ID in the
// roster and duty packages.
type Driver struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
