package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/handler/http/response"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// RosterHandler serves the month grid, assignment mutations, reconciliation
// and the confirmation lifecycle.
type RosterHandler interface {
	MonthGrid(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	SetExceptionStatus(w http.ResponseWriter, r *http.Request)
	SetRequired(w http.ResponseWriter, r *http.Request)
	Reconciliation(w http.ResponseWriter, r *http.Request)
	TotalHours(w http.ResponseWriter, r *http.Request)
	ConfirmShift(w http.ResponseWriter, r *http.Request)
	ConfirmResult(w http.ResponseWriter, r *http.Request)
	Unconfirm(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// periodFromURL parses the {year}/{month} URL segments shared by the roster
// and document routes.
func periodFromURL(r *http.Request) (year, month int, err error) {
	year, err = strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year")
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month")
	}
	if !validator.IsValidMonth(year, month) {
		return 0, 0, fmt.Errorf("invalid period %d-%d", year, month)
	}
	return year, month, nil
}

func (h *rosterHandlerImpl) MonthGrid(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	grid, err := h.rosterService.MonthGrid(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

func (h *rosterHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var req roster.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.rosterService.Assign(r.Context(), year, month, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Driver assigned", created)
}

func (h *rosterHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var req roster.UnassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.rosterService.Unassign(r.Context(), year, month, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Driver unassigned", nil)
}

func (h *rosterHandlerImpl) SetExceptionStatus(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var req roster.SetExceptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.rosterService.SetExceptionStatus(r.Context(), year, month, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status updated", nil)
}

func (h *rosterHandlerImpl) SetRequired(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var req roster.SetRequiredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.rosterService.SetRequired(r.Context(), year, month, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Required personnel updated", nil)
}

// Reconciliation returns the month's delta grid, or a single cell when both
// date and project query parameters are present.
func (h *rosterHandlerImpl) Reconciliation(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	date := r.URL.Query().Get("date")
	projectName := r.URL.Query().Get("project")

	if date != "" && projectName != "" {
		delta, err := h.rosterService.Reconcile(r.Context(), year, month, date, projectName)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, delta)
		return
	}

	deltas, err := h.rosterService.ReconcileMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, deltas)
}

func (h *rosterHandlerImpl) TotalHours(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	driverID := chi.URLParam(r, "driverID")
	if driverID == "" {
		response.BadRequest(w, "Driver ID is required", nil)
		return
	}

	hours, err := h.rosterService.TotalHours(r.Context(), year, month, driverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

func (h *rosterHandlerImpl) ConfirmShift(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.rosterService.ConfirmShift(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift confirmed", result)
}

func (h *rosterHandlerImpl) ConfirmResult(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.rosterService.ConfirmResult(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Result confirmed", result)
}

func (h *rosterHandlerImpl) Unconfirm(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var req roster.UnconfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.rosterService.Unconfirm(r.Context(), year, month, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Confirmation reset", result)
}
