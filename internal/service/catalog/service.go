package catalog

import (
	"context"
	"fmt"

	"github.com/crosslog/dispatch-backend-go/internal/domain/driver"
	"github.com/crosslog/dispatch-backend-go/internal/domain/project"
	"github.com/go-chi/jwtauth/v5"
)

// CatalogServiceImpl is the master-data service behind the project and
// driver endpoints. It implements both project.Service and driver.Service.
type CatalogServiceImpl struct {
	project.ProjectRepository
	driver.DriverRepository
}

func NewCatalogService(projectRepo project.ProjectRepository, driverRepo driver.DriverRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		ProjectRepository: projectRepo,
		DriverRepository:  driverRepo,
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

// CreateProject implements project.Service.
func (s *CatalogServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		CompanyID:    companyID,
		Name:         req.Name,
		UnitPrice:    req.UnitPrice,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Color:        req.Color,
		TextColor:    req.TextColor,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(created), nil
}

// GetProject implements project.Service.
func (s *CatalogServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.ProjectRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(p), nil
}

// ListProjects implements project.Service.
func (s *CatalogServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.ProjectRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, mapProjectToResponse(p))
	}

	return responses, nil
}

// UpdateProject implements project.Service. Only the fields present in the
// request change; assignments keep their snapshotted price and window.
func (s *CatalogServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.ProjectRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.UnitPrice != nil {
		p.UnitPrice = *req.UnitPrice
	}
	if req.StartTime != nil {
		p.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		p.EndTime = req.EndTime
	}
	if req.Color != nil {
		p.Color = *req.Color
	}
	if req.TextColor != nil {
		p.TextColor = *req.TextColor
	}
	if req.Abbreviation != nil {
		p.Abbreviation = *req.Abbreviation
	}

	if err := s.ProjectRepository.Update(ctx, p); err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(p), nil
}

// DeleteProject implements project.Service.
func (s *CatalogServiceImpl) DeleteProject(ctx context.Context, id string) error {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	return s.ProjectRepository.Delete(ctx, id, companyID)
}

// CreateDriver implements driver.Service.
func (s *CatalogServiceImpl) CreateDriver(ctx context.Context, req driver.CreateDriverRequest) (driver.DriverResponse, error) {
	if err := req.Validate(); err != nil {
		return driver.DriverResponse{}, err
	}

	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return driver.DriverResponse{}, err
	}

	created, err := s.DriverRepository.Create(ctx, driver.Driver{
		CompanyID: companyID,
		Name:      req.Name,
	})
	if err != nil {
		return driver.DriverResponse{}, err
	}

	return mapDriverToResponse(created), nil
}

// GetDriver implements driver.Service.
func (s *CatalogServiceImpl) GetDriver(ctx context.Context, id string) (driver.DriverResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return driver.DriverResponse{}, err
	}

	d, err := s.DriverRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return driver.DriverResponse{}, err
	}

	return mapDriverToResponse(d), nil
}

// ListDrivers implements driver.Service.
func (s *CatalogServiceImpl) ListDrivers(ctx context.Context) ([]driver.DriverResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	drivers, err := s.DriverRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]driver.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		responses = append(responses, mapDriverToResponse(d))
	}

	return responses, nil
}

func mapProjectToResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		UnitPrice:    p.UnitPrice,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		Color:        p.Color,
		TextColor:    p.TextColor,
		Abbreviation: p.Abbreviation,
		CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapDriverToResponse(d driver.Driver) driver.DriverResponse {
	return driver.DriverResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
