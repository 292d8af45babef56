package duty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crosslog/dispatch-backend-go/internal/domain/duty"
	"github.com/crosslog/dispatch-backend-go/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
)

type DutyServiceImpl struct {
	duty.ShiftWindowRepository
	notificationService notification.Service
}

func NewDutyService(repo duty.ShiftWindowRepository, notificationService notification.Service) duty.DutyService {
	return &DutyServiceImpl{
		ShiftWindowRepository: repo,
		notificationService:   notificationService,
	}
}

func subjectFromContext(ctx context.Context) (driverID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}
	driverID, ok = claims["driver_id"].(string)
	if !ok || driverID == "" {
		return "", "", fmt.Errorf("driver_id claim is missing or invalid")
	}

	return driverID, companyID, nil
}

// SetWindow implements duty.DutyService.
func (s *DutyServiceImpl) SetWindow(ctx context.Context, req duty.SetWindowRequest) (duty.ShiftWindowResponse, error) {
	if err := req.Validate(); err != nil {
		return duty.ShiftWindowResponse{}, err
	}

	driverID, companyID, err := subjectFromContext(ctx)
	if err != nil {
		return duty.ShiftWindowResponse{}, err
	}

	current, err := s.ShiftWindowRepository.Get(ctx, driverID, companyID)
	if err != nil && !errors.Is(err, duty.ErrShiftWindowNotFound) {
		return duty.ShiftWindowResponse{}, err
	}

	current.DriverID = driverID
	current.CompanyID = companyID
	current.ShiftStart = req.ShiftStart
	current.ShiftEnd = req.ShiftEnd

	saved, err := s.ShiftWindowRepository.Upsert(ctx, current)
	if err != nil {
		return duty.ShiftWindowResponse{}, fmt.Errorf("failed to save shift window: %w", err)
	}

	return mapShiftWindowToResponse(saved), nil
}

// ClockIn implements duty.DutyService.
func (s *DutyServiceImpl) ClockIn(ctx context.Context) (duty.ShiftWindowResponse, error) {
	return s.mutate(ctx, func(w *duty.ShiftWindow) error {
		if w.ShiftStart == nil || w.ShiftEnd == nil {
			return duty.ErrNoShiftWindow
		}
		if w.IsWorking {
			return duty.ErrAlreadyWorking
		}
		w.IsWorking = true
		w.Resting = false
		return nil
	})
}

// StartBreak implements duty.DutyService.
func (s *DutyServiceImpl) StartBreak(ctx context.Context) (duty.ShiftWindowResponse, error) {
	return s.mutate(ctx, func(w *duty.ShiftWindow) error {
		if !w.IsWorking {
			return duty.ErrNotWorking
		}
		if w.Resting {
			return duty.ErrAlreadyOnBreak
		}
		w.Resting = true
		return nil
	})
}

// EndBreak implements duty.DutyService.
func (s *DutyServiceImpl) EndBreak(ctx context.Context) (duty.ShiftWindowResponse, error) {
	return s.mutate(ctx, func(w *duty.ShiftWindow) error {
		if !w.IsWorking {
			return duty.ErrNotWorking
		}
		if !w.Resting {
			return duty.ErrNotOnBreak
		}
		w.Resting = false
		return nil
	})
}

// ClockOut implements duty.DutyService.
func (s *DutyServiceImpl) ClockOut(ctx context.Context) (duty.ShiftWindowResponse, error) {
	return s.mutate(ctx, func(w *duty.ShiftWindow) error {
		if !w.IsWorking {
			return duty.ErrNotWorking
		}
		w.IsWorking = false
		w.Resting = false
		return nil
	})
}

// mutate loads the caller's window, applies the clock action, and persists
// the result. Guards run against the stored row, not the request.
func (s *DutyServiceImpl) mutate(ctx context.Context, fn func(w *duty.ShiftWindow) error) (duty.ShiftWindowResponse, error) {
	driverID, companyID, err := subjectFromContext(ctx)
	if err != nil {
		return duty.ShiftWindowResponse{}, err
	}

	w, err := s.ShiftWindowRepository.Get(ctx, driverID, companyID)
	if err != nil {
		if errors.Is(err, duty.ErrShiftWindowNotFound) {
			return duty.ShiftWindowResponse{}, duty.ErrNoShiftWindow
		}
		return duty.ShiftWindowResponse{}, err
	}

	if err := fn(&w); err != nil {
		return duty.ShiftWindowResponse{}, err
	}

	saved, err := s.ShiftWindowRepository.Upsert(ctx, w)
	if err != nil {
		return duty.ShiftWindowResponse{}, fmt.Errorf("failed to save shift window: %w", err)
	}

	return mapShiftWindowToResponse(saved), nil
}

// CompanyStatus implements duty.DutyService.
func (s *DutyServiceImpl) CompanyStatus(ctx context.Context) (duty.CompanyStatusResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return duty.CompanyStatusResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return duty.CompanyStatusResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	windows, err := s.ShiftWindowRepository.ListCompany(ctx, companyID)
	if err != nil {
		return duty.CompanyStatusResponse{}, fmt.Errorf("failed to list shift windows: %w", err)
	}

	drivers := make([]duty.ShiftWindowResponse, 0, len(windows))
	for _, w := range windows {
		drivers = append(drivers, mapShiftWindowToResponse(w))
	}

	return duty.CompanyStatusResponse{Drivers: drivers}, nil
}

// Sweep implements duty.DutyService. It runs under the scheduler's tick
// context and recomputes every driver in every tenant. The derived status is
// always written back, even when unchanged, so status_updated_at doubles as
// a sweep liveness marker per driver.
func (s *DutyServiceImpl) Sweep(ctx context.Context) error {
	windows, err := s.ShiftWindowRepository.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list shift windows: %w", err)
	}

	at := time.Now()
	now := at.Format("15:04")

	var failed int
	for _, w := range windows {
		status, alert := duty.DeriveStatus(now, w, at)

		if err := s.ShiftWindowRepository.UpdateDerived(ctx, w.DriverID, w.CompanyID, status, at); err != nil {
			failed++
			slog.Error("failed to update derived status", "driver_id", w.DriverID, "error", err)
			continue
		}

		if alert == nil {
			continue
		}

		notifType := notification.TypeMissedClockIn
		if alert.Severity == duty.SeverityCritical {
			notifType = notification.TypeMissedClockOut
		}

		if err := s.notificationService.Queue(ctx, notification.CreateNotificationRequest{
			CompanyID: w.CompanyID,
			DriverID:  w.DriverID,
			Type:      notifType,
			Severity:  string(alert.Severity),
			Message:   alert.Message,
			Data: map[string]interface{}{
				"status": string(status),
				"at":     alert.Timestamp.Format(time.RFC3339),
			},
		}); err != nil {
			failed++
			slog.Error("failed to queue sweep alert", "driver_id", w.DriverID, "error", err)
		}
	}

	slog.Info("operational status sweep finished", "drivers", len(windows), "failed", failed)
	return nil
}

func mapShiftWindowToResponse(w duty.ShiftWindow) duty.ShiftWindowResponse {
	var updatedAt *string
	if w.StatusUpdatedAt != nil {
		formatted := w.StatusUpdatedAt.Format("2006-01-02 15:04:05")
		updatedAt = &formatted
	}

	return duty.ShiftWindowResponse{
		DriverID:        w.DriverID,
		ShiftStart:      w.ShiftStart,
		ShiftEnd:        w.ShiftEnd,
		IsWorking:       w.IsWorking,
		Resting:         w.Resting,
		Status:          string(w.Status),
		StatusUpdatedAt: updatedAt,
	}
}
