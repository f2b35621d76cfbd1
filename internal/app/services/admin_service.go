package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
)

// AdminService handles the admin dashboard and content management
type AdminService struct {
	userRepo     *repositories.UserRepository
	busRepo      *repositories.BusRepository
	resourceRepo *repositories.ResourceRepository
	eventRepo    *repositories.EventRepository
	clubRepo     *repositories.ClubRepository
	postRepo     *repositories.PostRepository
	logger       zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo *repositories.UserRepository,
	busRepo *repositories.BusRepository,
	resourceRepo *repositories.ResourceRepository,
	eventRepo *repositories.EventRepository,
	clubRepo *repositories.ClubRepository,
	postRepo *repositories.PostRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		busRepo:      busRepo,
		resourceRepo: resourceRepo,
		eventRepo:    eventRepo,
		clubRepo:     clubRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// GetDashboard collects the counters shown on the admin panel
func (s *AdminService) GetDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	dashboard := &dto.AdminDashboardResponse{}

	var err error
	if dashboard.TotalUsers, err = s.userRepo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalBuses, err = s.busRepo.CountBuses(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalResources, err = s.resourceRepo.CountResources(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalEvents, err = s.eventRepo.CountEvents(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalClubs, err = s.clubRepo.CountClubs(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalPosts, err = s.postRepo.CountPosts(ctx); err != nil {
		return nil, err
	}

	return dashboard, nil
}

// CreateEvent publishes a new campus event
func (s *AdminService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		EventDate:        req.EventDate,
		Venue:            req.Venue,
		RegistrationLink: req.RegistrationLink,
		IsHighlighted:    req.IsHighlighted,
		EventType:        req.EventType,
	}
	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventId", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

// CreateClub registers a new student club. The secretary, when given, must be
// an existing user.
func (s *AdminService) CreateClub(ctx context.Context, req dto.CreateClubRequest) (*models.Club, error) {
	if req.SecretaryID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.SecretaryID); err != nil {
			return nil, err
		}
	}

	club := &models.Club{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ClubType:    req.ClubType,
		SecretaryID: req.SecretaryID,
	}
	if _, err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("clubId", club.ID).Str("name", club.Name).Msg("Club created")
	return club, nil
}
