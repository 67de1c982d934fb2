package services

import (
	"context"

	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/lib/googlemaps"
	"github.com/surveydisco-ai/backend/models"
	"github.com/surveydisco-ai/backend/repositories"
	"github.com/surveydisco-ai/backend/utils"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	parser      *ParserService
	geo         geoProvider
	homeBase    string
	checkSecret func(string) bool
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	parser := NewParserService()
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		parser:      parser,
		geo:         googlemaps.NewClient(),
		homeBase:    parser.homeBase,
		checkSecret: utils.CheckAdminSecret,
	}
}

// ListProjects retrieves all projects, newest first
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// CreateFromText parses intake text and inserts the resulting project
func (s *ProjectService) CreateFromText(ctx context.Context, text string) (models.Project, error) {
	project, err := s.parser.ParseProjectText(ctx, text)
	if err != nil {
		return models.Project{}, err
	}
	return s.projectRepo.Create(project)
}

// UpdateProject applies a partial update. Immutable fields are excluded by
// the request type; an update touching nothing is rejected.
func (s *ProjectService) UpdateProject(id uint, req dto.ProjectUpdateRequest) (models.Project, error) {
	columns := req.Columns()
	if len(columns) == 0 {
		return models.Project{}, ErrNoUpdatableFields
	}
	return s.projectRepo.UpdateColumns(id, columns)
}

// RefreshTravel recomputes travel time and distance for a stored project,
// overwriting only the travel fields and the modified timestamp
func (s *ProjectService) RefreshTravel(ctx context.Context, id uint) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}

	destination := project.GeoAddress
	if destination == "" {
		destination = project.Address
	}
	if destination == "" {
		return models.Project{}, ErrNoAddress
	}

	travel, err := s.geo.ComputeTravel(ctx, s.homeBase, destination)
	if err != nil || travel == nil {
		return models.Project{}, ErrTravelUnavailable
	}

	return s.projectRepo.UpdateColumns(id, map[string]interface{}{
		"travel_time":     travel.Duration,
		"travel_distance": travel.Distance,
	})
}

// DeleteProject removes a project. The admin secret is checked before any
// data is touched; a wrong secret never reaches the store.
func (s *ProjectService) DeleteProject(id uint, password string) (models.Project, error) {
	if !s.checkSecret(password) {
		return models.Project{}, ErrUnauthorized
	}
	return s.projectRepo.Delete(id)
}
