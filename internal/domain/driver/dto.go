package driver

import (
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
)

type CreateDriverRequest struct {
	Name string `json:"name"`
}

func (r CreateDriverRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DriverResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
