package roster

import (
	"errors"
	"fmt"
	"strings"
)

// Roster domain errors. Every lock or lifecycle violation is a typed,
// recoverable rejection; the caller may retry after the state changes.
var (
	// Assignment grid errors
	ErrPeriodLocked       = errors.New("the month is shift-confirmed and assignments are locked")
	ErrExceptionLocked    = errors.New("exception status can only be edited between shift and result confirmation")
	ErrAssignmentNotFound = errors.New("assignment not found at that position")

	// Lifecycle errors
	ErrAlreadyConfirmed      = errors.New("shift is already confirmed for this month")
	ErrInvalidTransition     = errors.New("result cannot be confirmed before the shift is confirmed")
	ErrNothingToUnconfirm    = errors.New("nothing is confirmed for this month")
	ErrUnconfirmNotConfirmed = errors.New("unconfirm requires explicit confirmation")
)

// DriverFailure records one driver whose document emission failed during a
// lifecycle transition.
type DriverFailure struct {
	DriverID string `json:"driver_id"`
	Cause    string `json:"cause"`
}

// PartialEmissionError reports that the lifecycle flag flipped but one or
// more per-driver documents were not emitted. Re-running emission for the
// listed drivers is safe: emission is idempotent per driver.
type PartialEmissionError struct {
	Failures []DriverFailure
}

func (e *PartialEmissionError) Error() string {
	ids := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.DriverID)
	}
	return fmt.Sprintf("document emission failed for %d driver(s): %s", len(e.Failures), strings.Join(ids, ", "))
}
