package roster

import (
	"testing"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthAssignments() []roster.Assignment {
	return []roster.Assignment{
		{DriverID: "d1", Date: "2025-06-02", ProjectName: "Harbor Run", UnitPrice: 15000, Status: roster.StatusNormal},
		{DriverID: "d1", Date: "2025-06-03", ProjectName: "Harbor Run", UnitPrice: 15000, Status: roster.StatusLate},
		{DriverID: "d1", Date: "2025-06-04", ProjectName: "Night Depot", UnitPrice: 22000, Status: roster.StatusNormal},
		{DriverID: "d1", Date: "2025-06-05", ProjectName: "Harbor Run", UnitPrice: 15000, Status: roster.StatusAbsent},
	}
}

func TestBuildPurchaseOrderLines(t *testing.T) {
	lines, total := buildPurchaseOrderLines(monthAssignments())

	// One line per assignment, absences included: the order reflects what was
	// planned, not what happened.
	require.Len(t, lines, 4)
	assert.Equal(t, "Harbor Run (2025-06-02)", lines[0].Label)
	assert.Equal(t, 15000, lines[0].Amount)
	assert.Equal(t, "Harbor Run (2025-06-05)", lines[3].Label)
	assert.Equal(t, 15000+15000+22000+15000, total)
}

func TestBuildPurchaseOrderLinesEmpty(t *testing.T) {
	lines, total := buildPurchaseOrderLines(nil)
	assert.Empty(t, lines)
	assert.Zero(t, total)
}

func TestBuildPaymentStatementLines(t *testing.T) {
	lines, total := buildPaymentStatementLines(monthAssignments())

	// Aggregated per project, absences excluded, sorted by project name.
	require.Len(t, lines, 2)
	assert.Equal(t, "Harbor Run x 2", lines[0].Label)
	assert.Equal(t, 30000, lines[0].Amount)
	assert.Equal(t, "Night Depot x 1", lines[1].Label)
	assert.Equal(t, 22000, lines[1].Amount)
	assert.Equal(t, 52000, total)
}

func TestBuildPaymentStatementLinesAllAbsent(t *testing.T) {
	lines, total := buildPaymentStatementLines([]roster.Assignment{
		{ProjectName: "Harbor Run", UnitPrice: 15000, Status: roster.StatusAbsent},
	})
	assert.Empty(t, lines)
	assert.Zero(t, total)
}

func TestGroupByDriver(t *testing.T) {
	assignments := append(monthAssignments(), roster.Assignment{
		DriverID: "d2", Date: "2025-06-02", ProjectName: "Night Depot", UnitPrice: 22000, Status: roster.StatusNormal,
	})

	byDriver := groupByDriver(assignments)
	require.Len(t, byDriver, 2)
	assert.Len(t, byDriver["d1"], 4)
	assert.Len(t, byDriver["d2"], 1)
}

func TestMonthDates(t *testing.T) {
	june := monthDates(2025, 6)
	require.Len(t, june, 30)
	assert.Equal(t, "2025-06-01", june[0])
	assert.Equal(t, "2025-06-30", june[29])

	feb := monthDates(2024, 2) // leap year
	assert.Len(t, feb, 29)

	assert.Len(t, monthDates(2025, 2), 28)
}

func TestDateInMonth(t *testing.T) {
	assert.True(t, dateInMonth("2025-06-15", 2025, 6))
	assert.False(t, dateInMonth("2025-07-01", 2025, 6))
	assert.False(t, dateInMonth("garbage", 2025, 6))
	assert.False(t, dateInMonth("2025-6-15", 2025, 6))
}
