package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
)

// CampusService handles events and the alumni and faculty directories
type CampusService struct {
	eventRepo     *repositories.EventRepository
	directoryRepo *repositories.DirectoryRepository
	logger        zerolog.Logger
}

// NewCampusService creates a new CampusService
func NewCampusService(
	eventRepo *repositories.EventRepository,
	directoryRepo *repositories.DirectoryRepository,
	logger zerolog.Logger,
) *CampusService {
	return &CampusService{
		eventRepo:     eventRepo,
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// ListEvents retrieves all events ordered by date
func (s *CampusService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// ListAlumni retrieves the alumni directory
func (s *CampusService) ListAlumni(ctx context.Context) ([]*models.Alumni, error) {
	return s.directoryRepo.GetAllAlumni(ctx)
}

// ListFaculty retrieves the faculty directory without relations
func (s *CampusService) ListFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.directoryRepo.GetAllFaculty(ctx)
}

// GetFaculty retrieves a faculty member with education and timetable
func (s *CampusService) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.directoryRepo.GetFacultyByID(ctx, id)
}
