package roster_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/domain/project"
	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/crosslog/dispatch-backend-go/internal/repository/postgresql"
	documentsvc "github.com/crosslog/dispatch-backend-go/internal/service/document"
	rostersvc "github.com/crosslog/dispatch-backend-go/internal/service/roster"
	"github.com/go-chi/jwtauth/v5"
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

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	tables := []string{"roster_assignments", "required_personnel", "confirmation_states", "projects", "documents"}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

// claimsContext builds the request context the services expect, carrying a
// verified token with the tenant claim.
func claimsContext(t *testing.T, companyID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"company_id": companyID,
		"type":       "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newRosterService(db *database.DB, docSvc document.Service) roster.RosterService {
	return rostersvc.NewRosterService(
		db,
		postgresql.NewAssignmentRepository(db),
		postgresql.NewRequiredRepository(db),
		postgresql.NewConfirmationRepository(db),
		postgresql.NewProjectRepository(db),
		docSvc,
		nil,
	)
}

func createProject(t *testing.T, ctx context.Context, repo project.ProjectRepository, name string, unitPrice int) project.Project {
	t.Helper()

	start, end := "09:00", "18:00"
	p, err := repo.Create(ctx, project.Project{
		CompanyID:    "company-1",
		Name:         name,
		UnitPrice:    unitPrice,
		StartTime:    &start,
		EndTime:      &end,
		Color:        "#1E90FF",
		TextColor:    "#FFFFFF",
		Abbreviation: "HR",
	})
	require.NoError(t, err)
	return p
}

func TestConfirmResultRequiresShiftConfirmed(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	svc := newRosterService(db, documentsvc.NewDocumentService(db, postgresql.NewDocumentRepository(db)))

	_, err := svc.ConfirmResult(ctx, 2025, 6)
	assert.True(t, errors.Is(err, roster.ErrInvalidTransition))
}

func TestConfirmingTwiceFails(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	svc := newRosterService(db, documentsvc.NewDocumentService(db, postgresql.NewDocumentRepository(db)))

	resp, err := svc.ConfirmShift(ctx, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, roster.LifecycleShiftConfirmed, resp.Lifecycle)

	_, err = svc.ConfirmShift(ctx, 2025, 6)
	assert.True(t, errors.Is(err, roster.ErrAlreadyConfirmed))

	resp, err = svc.ConfirmResult(ctx, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, roster.LifecycleResultConfirmed, resp.Lifecycle)

	_, err = svc.ConfirmResult(ctx, 2025, 6)
	assert.True(t, errors.Is(err, roster.ErrAlreadyConfirmed))
}

func TestUnconfirmResetsLifecycle(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	svc := newRosterService(db, documentsvc.NewDocumentService(db, postgresql.NewDocumentRepository(db)))

	_, err := svc.Unconfirm(ctx, 2025, 6, roster.UnconfirmRequest{Confirm: false})
	assert.True(t, errors.Is(err, roster.ErrUnconfirmNotConfirmed))

	_, err = svc.Unconfirm(ctx, 2025, 6, roster.UnconfirmRequest{Confirm: true})
	assert.True(t, errors.Is(err, roster.ErrNothingToUnconfirm))

	_, err = svc.ConfirmShift(ctx, 2025, 6)
	require.NoError(t, err)

	resp, err := svc.Unconfirm(ctx, 2025, 6, roster.UnconfirmRequest{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, roster.LifecycleDraft, resp.Lifecycle)
}

func TestAssignSnapshotsUnitPrice(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	svc := newRosterService(db, documentsvc.NewDocumentService(db, postgresql.NewDocumentRepository(db)))

	proj := createProject(t, ctx, projectRepo, "Harbor Run", 15000)

	first, err := svc.Assign(ctx, 2025, 6, roster.AssignRequest{
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
	})
	require.NoError(t, err)
	assert.Equal(t, 15000, first.UnitPrice)

	// A later catalog price change must not touch the stored assignment.
	proj.UnitPrice = 20000
	require.NoError(t, projectRepo.Update(ctx, proj))

	second, err := svc.Assign(ctx, 2025, 6, roster.AssignRequest{
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
	})
	require.NoError(t, err)
	assert.Equal(t, 20000, second.UnitPrice)

	stored, err := assignmentRepo.ListByDriver(ctx, "company-1", 2025, 6, "driver-1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 15000, stored[0].UnitPrice)
	assert.Equal(t, 20000, stored[1].UnitPrice)
}

func TestShiftConfirmationLocksAssignments(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	projectRepo := postgresql.NewProjectRepository(db)
	svc := newRosterService(db, documentsvc.NewDocumentService(db, postgresql.NewDocumentRepository(db)))

	createProject(t, ctx, projectRepo, "Harbor Run", 15000)

	_, err := svc.ConfirmShift(ctx, 2025, 6)
	require.NoError(t, err)

	_, err = svc.Assign(ctx, 2025, 6, roster.AssignRequest{
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
	})
	assert.True(t, errors.Is(err, roster.ErrPeriodLocked))

	err = svc.Unassign(ctx, 2025, 6, roster.UnassignRequest{
		DriverID: "driver-1",
		Date:     "2025-06-10",
	})
	assert.True(t, errors.Is(err, roster.ErrPeriodLocked))
}

// rejectingDocumentService fails emission for one driver so the confirmation
// reports a partial result.
type rejectingDocumentService struct {
	document.Service
	rejectDriverID string
}

func (s *rejectingDocumentService) Emit(ctx context.Context, req document.EmitRequest) (*document.Document, error) {
	if req.DriverID == s.rejectDriverID {
		return nil, errors.New("renderer unavailable")
	}
	return s.Service.Emit(ctx, req)
}

func TestConfirmShiftReportsPartialEmission(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	projectRepo := postgresql.NewProjectRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	docSvc := &rejectingDocumentService{
		Service:        documentsvc.NewDocumentService(db, documentRepo),
		rejectDriverID: "driver-2",
	}
	svc := newRosterService(db, docSvc)

	createProject(t, ctx, projectRepo, "Harbor Run", 15000)
	for _, driverID := range []string{"driver-1", "driver-2"} {
		_, err := svc.Assign(ctx, 2025, 6, roster.AssignRequest{
			DriverID:    driverID,
			Date:        "2025-06-10",
			ProjectName: "Harbor Run",
		})
		require.NoError(t, err)
	}

	resp, err := svc.ConfirmShift(ctx, 2025, 6)

	var partial *roster.PartialEmissionError
	require.True(t, errors.As(err, &partial))
	require.Len(t, partial.Failures, 1)
	assert.Equal(t, "driver-2", partial.Failures[0].DriverID)
	assert.Equal(t, roster.LifecycleShiftConfirmed, resp.Lifecycle)

	// The confirmation itself stands despite the failed emission.
	_, err = svc.ConfirmShift(ctx, 2025, 6)
	assert.True(t, errors.Is(err, roster.ErrAlreadyConfirmed))

	docs, err := documentRepo.ListPeriod(ctx, "company-1", 2025, 6)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "driver-1", docs[0].DriverID)
	assert.Equal(t, document.TypePurchaseOrder, docs[0].Type)
}

func TestConfirmResultEmitsPaymentStatements(t *testing.T) {
	db := requireTestDB(t)
	ctx := claimsContext(t, "company-1")
	truncateTables(t, ctx, db)

	projectRepo := postgresql.NewProjectRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	svc := newRosterService(db, documentsvc.NewDocumentService(db, documentRepo))

	createProject(t, ctx, projectRepo, "Harbor Run", 15000)
	_, err := svc.Assign(ctx, 2025, 6, roster.AssignRequest{
		DriverID:    "driver-1",
		Date:        "2025-06-10",
		ProjectName: "Harbor Run",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmShift(ctx, 2025, 6)
	require.NoError(t, err)
	_, err = svc.ConfirmResult(ctx, 2025, 6)
	require.NoError(t, err)

	docs, err := documentRepo.ListPeriod(ctx, "company-1", 2025, 6)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	var statement *document.Document
	for _, d := range docs {
		if d.Type == document.TypePaymentStatement {
			statement = d
		}
	}
	require.NotNil(t, statement)
	assert.Equal(t, 15000, statement.Total)
	require.NotNil(t, statement.TotalHours)
	assert.Equal(t, 9.0, *statement.TotalHours) // one 09:00-18:00 shift
}
