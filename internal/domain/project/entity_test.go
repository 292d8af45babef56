package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestWindowMinutes(t *testing.T) {
	cases := []struct {
		name  string
		start *string
		end   *string
		want  int
	}{
		{"standard day", strPtr("09:00"), strPtr("17:00"), 480},
		{"with minutes", strPtr("08:30"), strPtr("12:15"), 225},
		{"missing start", nil, strPtr("17:00"), 0},
		{"missing end", strPtr("09:00"), nil, 0},
		{"both missing", nil, nil, 0},
		{"inverted window", strPtr("17:00"), strPtr("09:00"), 0},
		{"zero-length window", strPtr("09:00"), strPtr("09:00"), 0},
		{"malformed start", strPtr("9:00"), strPtr("17:00"), 0},
		{"malformed end", strPtr("09:00"), strPtr("17h00"), 0},
		{"out of range hour", strPtr("25:00"), strPtr("26:00"), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Project{StartTime: tc.start, EndTime: tc.end}
			assert.Equal(t, tc.want, p.WindowMinutes())
		})
	}
}

func TestWindowMinutesToHours(t *testing.T) {
	// 480 minutes over a normal day is 8 hours once the roster divides by 60.
	p := Project{StartTime: strPtr("09:00"), EndTime: strPtr("17:00")}
	assert.Equal(t, 8.0, float64(p.WindowMinutes())/60.0)
}
