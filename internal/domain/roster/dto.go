package roster

import (
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
)

type AssignRequest struct {
	DriverID    string `json:"driver_id"`
	Date        string `json:"date"`
	ProjectName string `json:"project_name"`
}

func (r AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "driver_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.ProjectName) {
		errs = append(errs, validator.ValidationError{Field: "project_name", Message: "project_name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnassignRequest removes one assignment. Index targets a specific position;
// when nil the most recently appended assignment is removed (legacy
// last-in-first-out behavior).
type UnassignRequest struct {
	DriverID string `json:"driver_id"`
	Date     string `json:"date"`
	Index    *int   `json:"index"`
}

func (r UnassignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "driver_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Index != nil && *r.Index < 0 {
		errs = append(errs, validator.ValidationError{Field: "index", Message: "index must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetExceptionStatusRequest struct {
	DriverID string           `json:"driver_id"`
	Date     string           `json:"date"`
	Index    int              `json:"index"`
	Status   AssignmentStatus `json:"status"`
}

func (r SetExceptionStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "driver_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Index < 0 {
		errs = append(errs, validator.ValidationError{Field: "index", Message: "index must not be negative"})
	}
	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of normal, late, early, absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetRequiredRequest sets required headcount for one date, or for every date
// of the month when AllDates is true.
type SetRequiredRequest struct {
	ProjectName string  `json:"project_name"`
	Date        *string `json:"date"`
	Count       int     `json:"count"`
	AllDates    bool    `json:"all_dates"`
}

func (r SetRequiredRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectName) {
		errs = append(errs, validator.ValidationError{Field: "project_name", Message: "project_name is required"})
	}
	if r.Count < 0 {
		errs = append(errs, validator.ValidationError{Field: "count", Message: "count must not be negative"})
	}
	if !r.AllDates {
		if r.Date == nil {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required unless all_dates is set"})
		} else if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnconfirmRequest resets the lifecycle to draft. Confirm is the re-entrant
// safety gate: the caller must say so explicitly.
type UnconfirmRequest struct {
	Confirm bool `json:"confirm"`
}

type AssignmentResponse struct {
	ID          string `json:"id"`
	DriverID    string `json:"driver_id"`
	Date        string `json:"date"`
	ProjectName string `json:"project_name"`
	UnitPrice   int    `json:"unit_price"`
	Status      string `json:"status"`
	Position    int    `json:"position"`
}

// MonthGridResponse is the page-load read model: the full grid plus required
// headcount, reconciliation deltas and the lifecycle state.
type MonthGridResponse struct {
	Year      int                                        `json:"year"`
	Month     int                                        `json:"month"`
	Grid      map[string]map[string][]AssignmentResponse `json:"grid"` // driverID -> date -> assignments
	Required  []RequiredPersonnelResponse                `json:"required"`
	Deltas    []ReconciliationDelta                      `json:"deltas"`
	Lifecycle LifecycleState                             `json:"lifecycle"`
}

type RequiredPersonnelResponse struct {
	ProjectName string `json:"project_name"`
	Date        string `json:"date"`
	Count       int    `json:"count"`
}

type ConfirmationResponse struct {
	Lifecycle LifecycleState  `json:"lifecycle"`
	Failures  []DriverFailure `json:"failures,omitempty"`
}

type TotalHoursResponse struct {
	DriverID string  `json:"driver_id"`
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Hours    float64 `json:"hours"`
}
