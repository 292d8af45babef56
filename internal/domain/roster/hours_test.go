package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalHours(t *testing.T) {
	minutes := map[string]int{
		"Harbor Run":  480, // 09:00-17:00
		"Night Depot": 540,
		"No Window":   0,
	}

	cases := []struct {
		name        string
		assignments []Assignment
		want        float64
	}{
		{
			name: "single full day",
			assignments: []Assignment{
				{ProjectName: "Harbor Run", Status: StatusNormal},
			},
			want: 8.0,
		},
		{
			name: "absent contributes zero",
			assignments: []Assignment{
				{ProjectName: "Harbor Run", Status: StatusAbsent},
			},
			want: 0,
		},
		{
			name: "late and early still count full window",
			assignments: []Assignment{
				{ProjectName: "Harbor Run", Status: StatusLate},
				{ProjectName: "Harbor Run", Status: StatusEarly},
			},
			want: 16.0,
		},
		{
			name: "missing window contributes zero",
			assignments: []Assignment{
				{ProjectName: "No Window", Status: StatusNormal},
				{ProjectName: "Unknown Project", Status: StatusNormal},
			},
			want: 0,
		},
		{
			name: "mixed month",
			assignments: []Assignment{
				{ProjectName: "Harbor Run", Status: StatusNormal},
				{ProjectName: "Night Depot", Status: StatusNormal},
				{ProjectName: "Harbor Run", Status: StatusAbsent},
			},
			want: 17.0,
		},
		{
			name: "empty",
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalHours(tc.assignments, minutes))
		})
	}
}

func TestBuildDeltas(t *testing.T) {
	assigned := map[string]map[string]int{
		"Harbor Run": {
			"2025-06-01": 2,
			"2025-06-02": 3,
		},
	}
	required := []RequiredPersonnel{
		{ProjectName: "Harbor Run", Date: "2025-06-01", Count: 3},
		{ProjectName: "Harbor Run", Date: "2025-06-02", Count: 3},
		{ProjectName: "Night Depot", Date: "2025-06-01", Count: 1},
	}

	deltas := BuildDeltas(assigned, required)
	assert.Len(t, deltas, 3)

	byKey := make(map[string]ReconciliationDelta)
	for _, d := range deltas {
		byKey[d.ProjectName+"/"+d.Date] = d
	}

	short := byKey["Harbor Run/2025-06-01"]
	assert.Equal(t, 2, short.Assigned)
	assert.Equal(t, 3, short.Required)
	assert.Equal(t, -1, short.Delta)

	exact := byKey["Harbor Run/2025-06-02"]
	assert.Equal(t, 0, exact.Delta)

	// Required with nothing assigned still shows up, fully understaffed.
	unstaffed := byKey["Night Depot/2025-06-01"]
	assert.Equal(t, 0, unstaffed.Assigned)
	assert.Equal(t, -1, unstaffed.Delta)
}

func TestBuildDeltasAssignedWithoutRequired(t *testing.T) {
	assigned := map[string]map[string]int{
		"Harbor Run": {"2025-06-05": 2},
	}

	deltas := BuildDeltas(assigned, nil)
	assert.Len(t, deltas, 1)
	assert.Equal(t, 2, deltas[0].Assigned)
	assert.Equal(t, 0, deltas[0].Required)
	assert.Equal(t, 2, deltas[0].Delta)
}

func TestLifecycle(t *testing.T) {
	assert.Equal(t, LifecycleDraft, ConfirmationState{}.Lifecycle())
	assert.Equal(t, LifecycleShiftConfirmed, ConfirmationState{ShiftConfirmed: true}.Lifecycle())
	assert.Equal(t, LifecycleResultConfirmed, ConfirmationState{ShiftConfirmed: true, ResultConfirmed: true}.Lifecycle())
}
