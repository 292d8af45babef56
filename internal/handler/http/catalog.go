package http

import (
	"encoding/json"
	"net/http"

	"github.com/crosslog/dispatch-backend-go/internal/domain/driver"
	"github.com/crosslog/dispatch-backend-go/internal/domain/project"
	"github.com/crosslog/dispatch-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the project and driver master data endpoints.
type CatalogHandler interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	UpdateProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)

	ListDrivers(w http.ResponseWriter, r *http.Request)
	CreateDriver(w http.ResponseWriter, r *http.Request)
	GetDriver(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	projectService project.Service
	driverService  driver.Service
}

func NewCatalogHandler(projectService project.Service, driverService driver.Service) CatalogHandler {
	return &catalogHandlerImpl{
		projectService: projectService,
		driverService:  driverService,
	}
}

func (h *catalogHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

func (h *catalogHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", created)
}

func (h *catalogHandlerImpl) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	p, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *catalogHandlerImpl) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	updated, err := h.projectService.UpdateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated", updated)
}

func (h *catalogHandlerImpl) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted", nil)
}

func (h *catalogHandlerImpl) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.driverService.ListDrivers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, drivers)
}

func (h *catalogHandlerImpl) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req driver.CreateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.driverService.CreateDriver(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Driver created", created)
}

func (h *catalogHandlerImpl) GetDriver(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Driver ID is required", nil)
		return
	}

	d, err := h.driverService.GetDriver(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, d)
}
