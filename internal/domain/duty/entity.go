package duty

import "time"

// Status is a driver's derived real-time work state. It is never set
// directly; the sweep recomputes it from the shift window on every tick.
type Status string

const (
	StatusNoSchedule Status = "no_schedule"
	StatusPreShift   Status = "pre_shift"
	StatusActive     Status = "active"
	StatusOnBreak    Status = "on_break"
	StatusShiftEnded Status = "shift_ended"
)

// ShiftWindow is the per-driver record the clock-in/break/clock-out actions
// mutate and the sweep reads. It is deliberately independent of the roster
// grid: a driver with no assignments can still clock in against a window.
type ShiftWindow struct {
	DriverID        string
	CompanyID       string
	ShiftStart      *string // HH:MM
	ShiftEnd        *string // HH:MM
	IsWorking       bool
	Resting         bool
	Status          Status
	StatusUpdatedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AlertSeverity grades sweep alerts.
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is raised by the sweep when a driver misses a clock-in or clock-out.
// Deduplication across ticks belongs to the notification layer.
type Alert struct {
	DriverID  string
	Severity  AlertSeverity
	Message   string
	Timestamp time.Time
}
