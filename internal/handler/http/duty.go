package http

import (
	"encoding/json"
	"net/http"

	"github.com/crosslog/dispatch-backend-go/internal/domain/duty"
	"github.com/crosslog/dispatch-backend-go/internal/handler/http/response"
)

// DutyHandler serves the driver clock actions and the operator status board.
type DutyHandler interface {
	SetWindow(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	CompanyStatus(w http.ResponseWriter, r *http.Request)
}

type dutyHandlerImpl struct {
	dutyService duty.DutyService
}

func NewDutyHandler(dutyService duty.DutyService) DutyHandler {
	return &dutyHandlerImpl{
		dutyService: dutyService,
	}
}

func (h *dutyHandlerImpl) SetWindow(w http.ResponseWriter, r *http.Request) {
	var req duty.SetWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	window, err := h.dutyService.SetWindow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift window updated", window)
}

func (h *dutyHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	window, err := h.dutyService.ClockIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked in", window)
}

func (h *dutyHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	window, err := h.dutyService.StartBreak(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", window)
}

func (h *dutyHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	window, err := h.dutyService.EndBreak(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", window)
}

func (h *dutyHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	window, err := h.dutyService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", window)
}

func (h *dutyHandlerImpl) CompanyStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.dutyService.CompanyStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
