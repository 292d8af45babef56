package duty

import "errors"

// Duty domain errors
var (
	ErrNoShiftWindow       = errors.New("no shift window set for this driver")
	ErrAlreadyWorking      = errors.New("you have already clocked in")
	ErrNotWorking          = errors.New("you have not clocked in yet")
	ErrAlreadyOnBreak      = errors.New("you are already on break")
	ErrNotOnBreak          = errors.New("you are not on break")
	ErrShiftWindowNotFound = errors.New("shift window not found")
)
