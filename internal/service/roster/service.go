package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/domain/notification"
	"github.com/crosslog/dispatch-backend-go/internal/domain/project"
	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
	"github.com/crosslog/dispatch-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type RosterServiceImpl struct {
	db *database.DB
	roster.AssignmentRepository
	roster.RequiredRepository
	roster.ConfirmationRepository
	project.ProjectRepository
	documentService     document.Service
	notificationService notification.Service
}

func NewRosterService(
	db *database.DB,
	assignmentRepo roster.AssignmentRepository,
	requiredRepo roster.RequiredRepository,
	confirmationRepo roster.ConfirmationRepository,
	projectRepo project.ProjectRepository,
	documentService document.Service,
	notificationService notification.Service,
) roster.RosterService {
	return &RosterServiceImpl{
		db:                     db,
		AssignmentRepository:   assignmentRepo,
		RequiredRepository:     requiredRepo,
		ConfirmationRepository: confirmationRepo,
		ProjectRepository:      projectRepo,
		documentService:        documentService,
		notificationService:    notificationService,
	}
}

func tenantFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// monthDates lists every YYYY-MM-DD date of the month.
func monthDates(year, month int) []string {
	days := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	dates := make([]string, 0, days)
	for d := 1; d <= days; d++ {
		dates = append(dates, fmt.Sprintf("%04d-%02d-%02d", year, month, d))
	}
	return dates
}

func dateInMonth(date string, year, month int) bool {
	return len(date) == 10 && date[:7] == fmt.Sprintf("%04d-%02d", year, month)
}

// Assign implements roster.RosterService.
func (s *RosterServiceImpl) Assign(ctx context.Context, year, month int, req roster.AssignRequest) (roster.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.AssignmentResponse{}, err
	}
	if !dateInMonth(req.Date, year, month) {
		return roster.AssignmentResponse{}, validator.ValidationErrors{
			{Field: "date", Message: fmt.Sprintf("date %s is outside %04d-%02d", req.Date, year, month)},
		}
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.AssignmentResponse{}, err
	}

	var created roster.Assignment
	err = postgresql.WithMonthLock(ctx, s.db, companyID, year, month, func(txCtx context.Context) error {
		state, err := s.ConfirmationRepository.Get(txCtx, companyID, year, month)
		if err != nil {
			return err
		}
		if state.ShiftConfirmed {
			return roster.ErrPeriodLocked
		}

		// Catalog read happens here, at assign time. The unit price is
		// snapshotted onto the assignment and never re-read.
		proj, err := s.ProjectRepository.GetByName(txCtx, req.ProjectName, companyID)
		if err != nil {
			return err
		}

		created, err = s.AssignmentRepository.Append(txCtx, roster.Assignment{
			CompanyID:   companyID,
			Year:        year,
			Month:       month,
			DriverID:    req.DriverID,
			Date:        req.Date,
			ProjectName: proj.Name,
			UnitPrice:   proj.UnitPrice,
			Status:      roster.StatusNormal,
		})
		return err
	})
	if err != nil {
		return roster.AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(created), nil
}

// Unassign implements roster.RosterService.
func (s *RosterServiceImpl) Unassign(ctx context.Context, year, month int, req roster.UnassignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithMonthLock(ctx, s.db, companyID, year, month, func(txCtx context.Context) error {
		state, err := s.ConfirmationRepository.Get(txCtx, companyID, year, month)
		if err != nil {
			return err
		}
		if state.ShiftConfirmed {
			return roster.ErrPeriodLocked
		}

		if req.Index != nil {
			return s.AssignmentRepository.DeleteAt(txCtx, companyID, year, month, req.DriverID, req.Date, *req.Index)
		}

		// Legacy pop: removing from an empty list is a no-op, not an error.
		_, err = s.AssignmentRepository.DeleteLast(txCtx, companyID, year, month, req.DriverID, req.Date)
		return err
	})
}

// SetExceptionStatus implements roster.RosterService.
func (s *RosterServiceImpl) SetExceptionStatus(ctx context.Context, year, month int, req roster.SetExceptionStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithMonthLock(ctx, s.db, companyID, year, month, func(txCtx context.Context) error {
		state, err := s.ConfirmationRepository.Get(txCtx, companyID, year, month)
		if err != nil {
			return err
		}
		// Exception statuses are the one thing editable between the two
		// confirmations: the shift plan is locked, the result is not.
		if !state.ShiftConfirmed || state.ResultConfirmed {
			return roster.ErrExceptionLocked
		}

		return s.AssignmentRepository.UpdateStatus(txCtx, companyID, year, month, req.DriverID, req.Date, req.Index, req.Status)
	})
}

// SetRequired implements roster.RosterService.
func (s *RosterServiceImpl) SetRequired(ctx context.Context, year, month int, req roster.SetRequiredRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	if req.AllDates {
		return s.RequiredRepository.BulkUpsert(ctx, companyID, year, month, req.ProjectName, monthDates(year, month), req.Count)
	}

	return s.RequiredRepository.Upsert(ctx, roster.RequiredPersonnel{
		CompanyID:   companyID,
		Year:        year,
		Month:       month,
		ProjectName: req.ProjectName,
		Date:        *req.Date,
		Count:       req.Count,
	})
}

// Reconcile implements roster.RosterService.
func (s *RosterServiceImpl) Reconcile(ctx context.Context, year, month int, date, projectName string) (roster.ReconciliationDelta, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.ReconciliationDelta{}, err
	}

	assigned, err := s.AssignmentRepository.CountByProjectAndDate(ctx, companyID, year, month, date, projectName)
	if err != nil {
		return roster.ReconciliationDelta{}, err
	}

	required, err := s.RequiredRepository.Get(ctx, companyID, year, month, projectName, date)
	if err != nil {
		return roster.ReconciliationDelta{}, err
	}

	return roster.ReconciliationDelta{
		ProjectName: projectName,
		Date:        date,
		Assigned:    assigned,
		Required:    required,
		Delta:       assigned - required,
	}, nil
}

// ReconcileMonth implements roster.RosterService.
func (s *RosterServiceImpl) ReconcileMonth(ctx context.Context, year, month int) ([]roster.ReconciliationDelta, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.reconcileMonth(ctx, companyID, year, month)
}

func (s *RosterServiceImpl) reconcileMonth(ctx context.Context, companyID string, year, month int) ([]roster.ReconciliationDelta, error) {
	assigned, err := s.AssignmentRepository.CountsByProjectAndDate(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}

	required, err := s.RequiredRepository.ListMonth(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}

	return roster.BuildDeltas(assigned, required), nil
}

// TotalHours implements roster.RosterService.
func (s *RosterServiceImpl) TotalHours(ctx context.Context, year, month int, driverID string) (roster.TotalHoursResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.TotalHoursResponse{}, err
	}

	hours, err := s.totalHours(ctx, companyID, year, month, driverID)
	if err != nil {
		return roster.TotalHoursResponse{}, err
	}

	return roster.TotalHoursResponse{
		DriverID: driverID,
		Year:     year,
		Month:    month,
		Hours:    hours,
	}, nil
}

func (s *RosterServiceImpl) totalHours(ctx context.Context, companyID string, year, month int, driverID string) (float64, error) {
	assignments, err := s.AssignmentRepository.ListByDriver(ctx, companyID, year, month, driverID)
	if err != nil {
		return 0, err
	}

	minutesByProject, err := s.projectWindowMinutes(ctx, companyID)
	if err != nil {
		return 0, err
	}

	return roster.TotalHours(assignments, minutesByProject), nil
}

func (s *RosterServiceImpl) projectWindowMinutes(ctx context.Context, companyID string) (map[string]int, error) {
	projects, err := s.ProjectRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	minutes := make(map[string]int, len(projects))
	for _, p := range projects {
		minutes[p.Name] = p.WindowMinutes()
	}
	return minutes, nil
}

// MonthGrid implements roster.RosterService.
func (s *RosterServiceImpl) MonthGrid(ctx context.Context, year, month int) (roster.MonthGridResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.MonthGridResponse{}, err
	}

	assignments, err := s.AssignmentRepository.ListMonth(ctx, companyID, year, month)
	if err != nil {
		return roster.MonthGridResponse{}, err
	}

	grid := make(map[string]map[string][]roster.AssignmentResponse)
	for _, a := range assignments {
		if grid[a.DriverID] == nil {
			grid[a.DriverID] = make(map[string][]roster.AssignmentResponse)
		}
		grid[a.DriverID][a.Date] = append(grid[a.DriverID][a.Date], mapAssignmentToResponse(a))
	}

	required, err := s.RequiredRepository.ListMonth(ctx, companyID, year, month)
	if err != nil {
		return roster.MonthGridResponse{}, err
	}
	requiredResponses := make([]roster.RequiredPersonnelResponse, 0, len(required))
	for _, rp := range required {
		requiredResponses = append(requiredResponses, roster.RequiredPersonnelResponse{
			ProjectName: rp.ProjectName,
			Date:        rp.Date,
			Count:       rp.Count,
		})
	}

	deltas, err := s.reconcileMonth(ctx, companyID, year, month)
	if err != nil {
		return roster.MonthGridResponse{}, err
	}

	state, err := s.ConfirmationRepository.Get(ctx, companyID, year, month)
	if err != nil {
		return roster.MonthGridResponse{}, err
	}

	return roster.MonthGridResponse{
		Year:      year,
		Month:     month,
		Grid:      grid,
		Required:  requiredResponses,
		Deltas:    deltas,
		Lifecycle: state.Lifecycle(),
	}, nil
}

func mapAssignmentToResponse(a roster.Assignment) roster.AssignmentResponse {
	return roster.AssignmentResponse{
		ID:          a.ID,
		DriverID:    a.DriverID,
		Date:        a.Date,
		ProjectName: a.ProjectName,
		UnitPrice:   a.UnitPrice,
		Status:      string(a.Status),
		Position:    a.Position,
	}
}
