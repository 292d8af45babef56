package duty

import (
	"fmt"
	"time"
)

// DeriveStatus classifies one driver given the wall clock "now" as a
// zero-padded HH:MM string. It is a pure function: identical inputs yield
// identical outputs, and the returned alert (if any) is for this evaluation
// only. Zero-padded HH:MM strings order lexicographically, so plain string
// comparison is time comparison here.
//
// The rules, in order:
//
//  1. no window set                          -> NoSchedule
//  2. not working, before the window         -> PreShift
//  3. not working, inside the window         -> PreShift + missed clock-in alert
//  4. working and resting                    -> OnBreak
//  5. working, inside the window, not resting -> Active
//  6. working, at or past the window end     -> ShiftEnded + missed clock-out alert
//  7. anything else                          -> NoSchedule
func DeriveStatus(now string, w ShiftWindow, at time.Time) (Status, *Alert) {
	if w.ShiftStart == nil || *w.ShiftStart == "" || w.ShiftEnd == nil || *w.ShiftEnd == "" {
		return StatusNoSchedule, nil
	}
	start, end := *w.ShiftStart, *w.ShiftEnd

	if !w.IsWorking {
		if now < start {
			return StatusPreShift, nil
		}
		if now >= start && now < end {
			return StatusPreShift, &Alert{
				DriverID:  w.DriverID,
				Severity:  SeverityWarning,
				Message:   fmt.Sprintf("driver has not started work since %s", start),
				Timestamp: at,
			}
		}
		return StatusNoSchedule, nil
	}

	if w.Resting {
		return StatusOnBreak, nil
	}
	if now >= start && now < end {
		return StatusActive, nil
	}
	if now >= end {
		return StatusShiftEnded, &Alert{
			DriverID:  w.DriverID,
			Severity:  SeverityCritical,
			Message:   fmt.Sprintf("driver has not ended work since %s", end),
			Timestamp: at,
		}
	}

	return StatusNoSchedule, nil
}
