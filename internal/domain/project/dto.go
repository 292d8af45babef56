package project

import (
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name         string  `json:"name"`
	UnitPrice    int     `json:"unit_price"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Color        string  `json:"color"`
	TextColor    string  `json:"text_color"`
	Abbreviation string  `json:"abbreviation"`
}

func (r CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.UnitPrice < 0 {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "unit price must not be negative"})
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if r.Color != "" && !validator.IsValidHexColor(r.Color) {
		errs = append(errs, validator.ValidationError{Field: "color", Message: "must be #RRGGBB"})
	}
	if r.TextColor != "" && !validator.IsValidHexColor(r.TextColor) {
		errs = append(errs, validator.ValidationError{Field: "text_color", Message: "must be #RRGGBB"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name"`
	UnitPrice    *int    `json:"unit_price"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Color        *string `json:"color"`
	TextColor    *string `json:"text_color"`
	Abbreviation *string `json:"abbreviation"`
}

func (r UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.UnitPrice != nil && *r.UnitPrice < 0 {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "unit price must not be negative"})
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	UnitPrice    int     `json:"unit_price"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Color        string  `json:"color"`
	TextColor    string  `json:"text_color"`
	Abbreviation string  `json:"abbreviation"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
