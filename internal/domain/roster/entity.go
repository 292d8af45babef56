package roster

import "time"

// AssignmentStatus is the exception status recorded against one assignment
// after the fact (late arrival, early leave, absence).
type AssignmentStatus string

const (
	StatusNormal AssignmentStatus = "normal"
	StatusLate   AssignmentStatus = "late"
	StatusEarly  AssignmentStatus = "early"
	StatusAbsent AssignmentStatus = "absent"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusNormal, StatusLate, StatusEarly, StatusAbsent:
		return true
	}
	return false
}

// Assignment is one (driver, date, project) work unit. UnitPrice is copied
// from the catalog at assign time and never re-read, so historical payroll is
// immune to later catalog edits. Position orders multiple assignments on the
// same (driver, date); unassign without an index pops the highest position.
type Assignment struct {
	ID          string
	CompanyID   string
	Year        int
	Month       int
	DriverID    string
	Date        string // YYYY-MM-DD
	ProjectName string
	UnitPrice   int
	Status      AssignmentStatus
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequiredPersonnel is the per-(project, date) headcount an administrator
// asked for, independent of what is actually assigned.
type RequiredPersonnel struct {
	CompanyID   string
	Year        int
	Month       int
	ProjectName string
	Date        string
	Count       int
}

// ConfirmationState is the two-flag lifecycle gate for one (company, year,
// month). ResultConfirmed implies ShiftConfirmed.
type ConfirmationState struct {
	CompanyID       string
	Year            int
	Month           int
	ShiftConfirmed  bool
	ResultConfirmed bool
	UpdatedAt       time.Time
}

// LifecycleState is the derived three-state view of the two flags.
type LifecycleState string

const (
	LifecycleDraft           LifecycleState = "draft"
	LifecycleShiftConfirmed  LifecycleState = "shift_confirmed"
	LifecycleResultConfirmed LifecycleState = "result_confirmed"
)

func (c ConfirmationState) Lifecycle() LifecycleState {
	switch {
	case c.ResultConfirmed:
		return LifecycleResultConfirmed
	case c.ShiftConfirmed:
		return LifecycleShiftConfirmed
	default:
		return LifecycleDraft
	}
}

// ReconciliationDelta is assigned headcount minus required headcount for one
// (project, date). Positive = overstaffed, negative = understaffed.
type ReconciliationDelta struct {
	ProjectName string `json:"project_name"`
	Date        string `json:"date"`
	Assigned    int    `json:"assigned"`
	Required    int    `json:"required"`
	Delta       int    `json:"delta"`
}
