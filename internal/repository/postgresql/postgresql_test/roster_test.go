package postgresql_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/crosslog/dispatch-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// requireTestDB connects once per run. Tests that need PostgreSQL skip when
// TEST_DATABASE_URL is not set.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return testDB
}

func truncateRosterTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"roster_assignments", "required_personnel", "confirmation_states"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func TestAssignmentAppendAllocatesPositions(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateRosterTables(t, ctx, db)

	repo := postgresql.NewAssignmentRepository(db)

	base := roster.Assignment{
		CompanyID:   "company-1",
		Year:        2025,
		Month:       6,
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
		UnitPrice:   15000,
		Status:      roster.StatusNormal,
	}

	first, err := repo.Append(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	second, err := repo.Append(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	// A different date starts its own position sequence.
	other := base
	other.Date = "2025-06-11"
	third, err := repo.Append(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 0, third.Position)
}

func TestAssignmentDeleteLast(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateRosterTables(t, ctx, db)

	repo := postgresql.NewAssignmentRepository(db)

	base := roster.Assignment{
		CompanyID:   "company-1",
		Year:        2025,
		Month:       6,
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
		UnitPrice:   15000,
		Status:      roster.StatusNormal,
	}
	_, err := repo.Append(ctx, base)
	require.NoError(t, err)
	second, err := repo.Append(ctx, base)
	require.NoError(t, err)

	deleted, err := repo.DeleteLast(ctx, "company-1", 2025, 6, "driver-1", "2025-06-10")
	require.NoError(t, err)
	assert.True(t, deleted)

	remaining, err := repo.ListByDriver(ctx, "company-1", 2025, 6, "driver-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.NotEqual(t, second.ID, remaining[0].ID)

	// Popping an empty cell is a no-op, not an error.
	deleted, err = repo.DeleteLast(ctx, "company-1", 2025, 6, "driver-1", "2025-06-20")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAssignmentDeleteAtCompactsPositions(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateRosterTables(t, ctx, db)

	repo := postgresql.NewAssignmentRepository(db)

	base := roster.Assignment{
		CompanyID:   "company-1",
		Year:        2025,
		Month:       6,
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
		UnitPrice:   15000,
		Status:      roster.StatusNormal,
	}
	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, base)
		require.NoError(t, err)
	}

	err := repo.DeleteAt(ctx, "company-1", 2025, 6, "driver-1", "2025-06-10", 1)
	require.NoError(t, err)

	remaining, err := repo.ListByDriver(ctx, "company-1", 2025, 6, "driver-1")
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 0, remaining[0].Position)
	assert.Equal(t, 1, remaining[1].Position)

	err = repo.DeleteAt(ctx, "company-1", 2025, 6, "driver-1", "2025-06-10", 5)
	assert.True(t, errors.Is(err, roster.ErrAssignmentNotFound))
}

func TestRequiredUpsert(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateRosterTables(t, ctx, db)

	repo := postgresql.NewRequiredRepository(db)

	rp := roster.RequiredPersonnel{
		CompanyID:   "company-1",
		Year:        2025,
		Month:       6,
		ProjectName: "Harbor Run",
		Date:        "2025-06-10",
		Count:       3,
	}
	require.NoError(t, repo.Upsert(ctx, rp))

	count, err := repo.Get(ctx, "company-1", 2025, 6, "Harbor Run", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rp.Count = 5
	require.NoError(t, repo.Upsert(ctx, rp))

	count, err = repo.Get(ctx, "company-1", 2025, 6, "Harbor Run", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Unset (project, date) reads as zero.
	count, err = repo.Get(ctx, "company-1", 2025, 6, "Night Depot", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestConfirmationDefaultsToDraft(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateRosterTables(t, ctx, db)

	repo := postgresql.NewConfirmationRepository(db)

	state, err := repo.Get(ctx, "company-1", 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, roster.LifecycleDraft, state.Lifecycle())

	state.ShiftConfirmed = true
	require.NoError(t, repo.Set(ctx, state))

	state, err = repo.Get(ctx, "company-1", 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, roster.LifecycleShiftConfirmed, state.Lifecycle())
}
