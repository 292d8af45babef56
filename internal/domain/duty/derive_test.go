package duty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string, working, resting bool) ShiftWindow {
	return ShiftWindow{
		DriverID:   "driver-1",
		CompanyID:  "company-1",
		ShiftStart: &start,
		ShiftEnd:   &end,
		IsWorking:  working,
		Resting:    resting,
	}
}

func TestDeriveStatus(t *testing.T) {
	at := time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		now        string
		w          ShiftWindow
		wantStatus Status
		wantAlert  bool
	}{
		{
			name:       "no window set",
			now:        "10:30",
			w:          ShiftWindow{DriverID: "driver-1"},
			wantStatus: StatusNoSchedule,
		},
		{
			name:       "before shift not working",
			now:        "08:00",
			w:          window("09:00", "18:00", false, false),
			wantStatus: StatusPreShift,
		},
		{
			name:       "inside shift not working raises missed clock-in",
			now:        "10:30",
			w:          window("09:00", "18:00", false, false),
			wantStatus: StatusPreShift,
			wantAlert:  true,
		},
		{
			name:       "after shift never clocked in",
			now:        "19:00",
			w:          window("09:00", "18:00", false, false),
			wantStatus: StatusNoSchedule,
		},
		{
			name:       "working inside shift",
			now:        "10:30",
			w:          window("09:00", "18:00", true, false),
			wantStatus: StatusActive,
		},
		{
			name:       "on break",
			now:        "12:15",
			w:          window("09:00", "18:00", true, true),
			wantStatus: StatusOnBreak,
		},
		{
			name:       "break overrides shift end",
			now:        "18:30",
			w:          window("09:00", "18:00", true, true),
			wantStatus: StatusOnBreak,
		},
		{
			name:       "working past shift end raises missed clock-out",
			now:        "18:30",
			w:          window("09:00", "18:00", true, false),
			wantStatus: StatusShiftEnded,
			wantAlert:  true,
		},
		{
			name:       "exactly at shift end counts as ended",
			now:        "18:00",
			w:          window("09:00", "18:00", true, false),
			wantStatus: StatusShiftEnded,
			wantAlert:  true,
		},
		{
			name:       "exactly at shift start not working",
			now:        "09:00",
			w:          window("09:00", "18:00", false, false),
			wantStatus: StatusPreShift,
			wantAlert:  true,
		},
		{
			name:       "working before shift start",
			now:        "08:30",
			w:          window("09:00", "18:00", true, false),
			wantStatus: StatusNoSchedule,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, alert := DeriveStatus(tc.now, tc.w, at)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantAlert {
				require.NotNil(t, alert)
				assert.Equal(t, "driver-1", alert.DriverID)
				assert.Equal(t, at, alert.Timestamp)
			} else {
				assert.Nil(t, alert)
			}
		})
	}
}

func TestDeriveStatusAlertContents(t *testing.T) {
	at := time.Now()

	status, alert := DeriveStatus("10:30", window("09:00", "18:00", false, false), at)
	require.NotNil(t, alert)
	assert.Equal(t, StatusPreShift, status)
	assert.Equal(t, SeverityWarning, alert.Severity)
	assert.Contains(t, alert.Message, "09:00")

	status, alert = DeriveStatus("19:00", window("09:00", "18:00", true, false), at)
	require.NotNil(t, alert)
	assert.Equal(t, StatusShiftEnded, status)
	assert.Equal(t, SeverityCritical, alert.Severity)
	assert.Contains(t, alert.Message, "18:00")
}

// Identical inputs must classify identically regardless of prior calls.
func TestDeriveStatusDeterministic(t *testing.T) {
	at := time.Now()
	w := window("09:00", "18:00", false, false)

	first, firstAlert := DeriveStatus("10:30", w, at)
	for i := 0; i < 10; i++ {
		status, alert := DeriveStatus("10:30", w, at)
		assert.Equal(t, first, status)
		require.NotNil(t, alert)
		assert.Equal(t, firstAlert.Message, alert.Message)
	}
}
