package duty

import (
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
)

type SetWindowRequest struct {
	ShiftStart *string `json:"shift_start"`
	ShiftEnd   *string `json:"shift_end"`
}

func (r SetWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftStart != nil && !validator.IsValidClock(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{Field: "shift_start", Message: "must be HH:MM"})
	}
	if r.ShiftEnd != nil && !validator.IsValidClock(*r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "must be HH:MM"})
	}
	if r.ShiftStart != nil && r.ShiftEnd != nil && *r.ShiftEnd <= *r.ShiftStart {
		errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "must be after shift_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftWindowResponse struct {
	DriverID        string  `json:"driver_id"`
	ShiftStart      *string `json:"shift_start"`
	ShiftEnd        *string `json:"shift_end"`
	IsWorking       bool    `json:"is_working"`
	Resting         bool    `json:"resting"`
	Status          string  `json:"status"`
	StatusUpdatedAt *string `json:"status_updated_at"`
}

type CompanyStatusResponse struct {
	Drivers []ShiftWindowResponse `json:"drivers"`
}
