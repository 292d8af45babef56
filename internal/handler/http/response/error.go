package response

import (
	"errors"
	"net/http"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/domain/driver"
	"github.com/crosslog/dispatch-backend-go/internal/domain/duty"
	"github.com/crosslog/dispatch-backend-go/internal/domain/notification"
	"github.com/crosslog/dispatch-backend-go/internal/domain/project"
	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Partial document emission: the confirmation stands, some drivers need
	// a re-run. 207 so the client can tell this apart from full success.
	var partial *roster.PartialEmissionError
	if errors.As(err, &partial) {
		MultiStatus(w, "PARTIAL_EMISSION", partial.Error(), nil, partial.Failures)
		return
	}

	switch {
	// Catalog domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectNameExists):
		Conflict(w, "Project name already exists")
	case errors.Is(err, project.ErrProjectReferenced):
		Conflict(w, "Project is referenced by assignments")
	case errors.Is(err, driver.ErrDriverNotFound):
		NotFound(w, "Driver not found")

	// Roster domain errors
	case errors.Is(err, roster.ErrPeriodLocked):
		Conflict(w, "Month is shift-confirmed; assignments are locked")
	case errors.Is(err, roster.ErrExceptionLocked):
		Conflict(w, "Exception status can only be edited between shift and result confirmation")
	case errors.Is(err, roster.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found at that position")
	case errors.Is(err, roster.ErrAlreadyConfirmed):
		Conflict(w, "Already confirmed for this month")
	case errors.Is(err, roster.ErrInvalidTransition):
		Conflict(w, "Result cannot be confirmed before the shift is confirmed")
	case errors.Is(err, roster.ErrNothingToUnconfirm):
		Conflict(w, "Nothing is confirmed for this month")
	case errors.Is(err, roster.ErrUnconfirmNotConfirmed):
		BadRequest(w, "Unconfirm requires explicit confirmation", nil)

	// Duty domain errors
	case errors.Is(err, duty.ErrNoShiftWindow):
		BadRequest(w, "No shift window set for this driver", nil)
	case errors.Is(err, duty.ErrAlreadyWorking):
		Conflict(w, "Already clocked in")
	case errors.Is(err, duty.ErrNotWorking):
		Conflict(w, "Not clocked in")
	case errors.Is(err, duty.ErrAlreadyOnBreak):
		Conflict(w, "Already on break")
	case errors.Is(err, duty.ErrNotOnBreak):
		Conflict(w, "Not on break")
	case errors.Is(err, duty.ErrShiftWindowNotFound):
		NotFound(w, "Shift window not found")

	// Document and notification errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
