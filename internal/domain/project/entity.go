package project

import (
	"time"
)

// Project is a client engagement drivers get assigned to. UnitPrice is in
// currency minor units. StartTime/EndTime are zero-padded "HH:MM" clocks and
// may be unset for projects without a fixed window.
type Project struct {
	ID           string
	CompanyID    string
	Name         string
	UnitPrice    int
	StartTime    *string
	EndTime      *string
	Color        string
	TextColor    string
	Abbreviation string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WindowMinutes returns the length of the project's daily window in minutes,
// or 0 when either end of the window is missing or malformed. Assignments on
// such projects contribute zero hours rather than failing.
func (p Project) WindowMinutes() int {
	if p.StartTime == nil || p.EndTime == nil {
		return 0
	}
	start, ok := parseClock(*p.StartTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(*p.EndTime)
	if !ok {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}

func parseClock(clock string) (int, bool) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if clock[i] < '0' || clock[i] > '9' {
			return 0, false
		}
	}
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
