package roster

import (
	"context"
	"log/slog"
	"sort"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/domain/notification"
	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/repository/postgresql"
)

// ConfirmShift implements roster.RosterService.
// The flag flips inside the month lock; purchase orders are emitted after the
// transaction commits. A driver whose emission fails is reported in
// PartialEmissionError while the confirmation itself stands — re-running
// emission is cheap and idempotent, rolling back a month confirmation is not.
func (s *RosterServiceImpl) ConfirmShift(ctx context.Context, year, month int) (roster.ConfirmationResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.ConfirmationResponse{}, err
	}

	err = postgresql.WithMonthLock(ctx, s.db, companyID, year, month, func(txCtx context.Context) error {
		state, err := s.ConfirmationRepository.Get(txCtx, companyID, year, month)
		if err != nil {
			return err
		}
		if state.ShiftConfirmed {
			return roster.ErrAlreadyConfirmed
		}
		state.ShiftConfirmed = true
		return s.ConfirmationRepository.Set(txCtx, state)
	})
	if err != nil {
		return roster.ConfirmationResponse{}, err
	}

	failures := s.emitForAllDrivers(ctx, companyID, year, month, document.TypePurchaseOrder)

	resp := roster.ConfirmationResponse{
		Lifecycle: roster.LifecycleShiftConfirmed,
		Failures:  failures,
	}
	if len(failures) > 0 {
		return resp, &roster.PartialEmissionError{Failures: failures}
	}
	return resp, nil
}

// ConfirmResult implements roster.RosterService.
func (s *RosterServiceImpl) ConfirmResult(ctx context.Context, year, month int) (roster.ConfirmationResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.ConfirmationResponse{}, err
	}

	err = postgresql.WithMonthLock(ctx, s.db, companyID, year, month, func(txCtx context.Context) error {
		state, err := s.ConfirmationRepository.Get(txCtx, companyID, year, month)
		if err != nil {
			return err
		}
		if state.ResultConfirmed {
			return roster.ErrAlreadyConfirmed
		}
		if !state.ShiftConfirmed {
			return roster.ErrInvalidTransition
		}
		state.ResultConfirmed = true
		return s.ConfirmationRepository.Set(txCtx, state)
	})
	if err != nil {
		return roster.ConfirmationResponse{}, err
	}

	failures := s.emitForAllDrivers(ctx, companyID, year, month, document.TypePaymentStatement)

	resp := roster.ConfirmationResponse{
		Lifecycle: roster.LifecycleResultConfirmed,
		Failures:  failures,
	}
	if len(failures) > 0 {
		return resp, &roster.PartialEmissionError{Failures: failures}
	}
	return resp, nil
}

// Unconfirm implements roster.RosterService.
// Resets both flags. Assignments and already-emitted documents stay: the
// documents remain as an audit trail and get superseded on re-emission.
func (s *RosterServiceImpl) Unconfirm(ctx context.Context, year, month int, req roster.UnconfirmRequest) (roster.ConfirmationResponse, error) {
	if !req.Confirm {
		return roster.ConfirmationResponse{}, roster.ErrUnconfirmNotConfirmed
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return roster.ConfirmationResponse{}, err
	}

	err = postgresql.WithMonthLock(ctx, s.db, companyID, year, month, func(txCtx context.Context) error {
		state, err := s.ConfirmationRepository.Get(txCtx, companyID, year, month)
		if err != nil {
			return err
		}
		if !state.ShiftConfirmed && !state.ResultConfirmed {
			return roster.ErrNothingToUnconfirm
		}
		state.ShiftConfirmed = false
		state.ResultConfirmed = false
		return s.ConfirmationRepository.Set(txCtx, state)
	})
	if err != nil {
		return roster.ConfirmationResponse{}, err
	}

	return roster.ConfirmationResponse{Lifecycle: roster.LifecycleDraft}, nil
}

// emitForAllDrivers emits one document per driver with assignments this
// month. Emissions are independent: one failure is recorded and the loop
// moves on, so the caller learns exactly which drivers need a re-run.
func (s *RosterServiceImpl) emitForAllDrivers(ctx context.Context, companyID string, year, month int, docType document.Type) []roster.DriverFailure {
	assignments, err := s.AssignmentRepository.ListMonth(ctx, companyID, year, month)
	if err != nil {
		return []roster.DriverFailure{{DriverID: "*", Cause: err.Error()}}
	}

	byDriver := groupByDriver(assignments)

	driverIDs := make([]string, 0, len(byDriver))
	for driverID := range byDriver {
		driverIDs = append(driverIDs, driverID)
	}
	sort.Strings(driverIDs)

	var failures []roster.DriverFailure
	for _, driverID := range driverIDs {
		driverAssignments := byDriver[driverID]

		var lines []document.LineItem
		var totalHours *float64

		switch docType {
		case document.TypePurchaseOrder:
			lines, _ = buildPurchaseOrderLines(driverAssignments)
		case document.TypePaymentStatement:
			lines, _ = buildPaymentStatementLines(driverAssignments)
			hours, err := s.totalHours(ctx, companyID, year, month, driverID)
			if err != nil {
				failures = append(failures, roster.DriverFailure{DriverID: driverID, Cause: err.Error()})
				continue
			}
			totalHours = &hours
		}

		doc, err := s.documentService.Emit(ctx, document.EmitRequest{
			CompanyID:  companyID,
			DriverID:   driverID,
			Year:       year,
			Month:      month,
			Type:       docType,
			LineItems:  lines,
			TotalHours: totalHours,
		})
		if err != nil {
			failures = append(failures, roster.DriverFailure{DriverID: driverID, Cause: err.Error()})
			continue
		}

		// Operator console ping; not part of the emission contract.
		if s.notificationService != nil {
			if err := s.notificationService.Queue(ctx, notification.CreateNotificationRequest{
				CompanyID: companyID,
				DriverID:  driverID,
				Type:      notification.TypeDocumentIssued,
				Severity:  "info",
				Message:   string(docType) + " issued",
				Data: map[string]interface{}{
					"document_id": doc.ID,
					"year":        year,
					"month":       month,
				},
			}); err != nil {
				slog.Error("failed to queue document notification", "driver_id", driverID, "error", err)
			}
		}
	}

	return failures
}
