package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

const dashboardPostLimit = 10
const dashboardEventLimit = 5

// UserService handles profile and dashboard operations for students
type UserService struct {
	userRepo  *repositories.UserRepository
	busRepo   *repositories.BusRepository
	eventRepo *repositories.EventRepository
	postRepo  *repositories.PostRepository
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	busRepo *repositories.BusRepository,
	eventRepo *repositories.EventRepository,
	postRepo *repositories.PostRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		busRepo:   busRepo,
		eventRepo: eventRepo,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// GetProfile retrieves the user behind a session
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the provided profile changes, leaving omitted fields
// untouched
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, apperrors.NewBadRequestError("name cannot be empty")
		}
		user.Name = trimmed
	}
	if req.Course != nil {
		user.Course = req.Course
	}
	if req.Branch != nil {
		user.Branch = req.Branch
	}
	if req.Batch != nil {
		user.Batch = req.Batch
	}
	if req.Year != nil {
		user.Year = req.Year
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("userId", userID).Msg("Profile updated")
	return user, nil
}

// SelectBus records which bus and stop the user wants to track
func (s *UserService) SelectBus(ctx context.Context, userID int64, req dto.SelectBusRequest) (*models.User, error) {
	if _, err := s.busRepo.GetByID(ctx, req.BusID); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateBusSelection(ctx, userID, &req.BusID, req.SelectedStop); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// GetDashboard aggregates everything the home screen shows in a single call
func (s *UserService) GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.eventRepo.GetUpcoming(ctx, time.Now(), dashboardEventLimit)
	if err != nil {
		return nil, err
	}

	highlighted, err := s.eventRepo.GetHighlighted(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetAll(ctx, dashboardPostLimit)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.DashboardResponse{
		User: dto.NewUserResponse(user),
	}
	for _, e := range upcoming {
		dashboard.UpcomingEvents = append(dashboard.UpcomingEvents, dto.NewEventResponse(e))
	}
	for _, e := range highlighted {
		dashboard.HighlightedEvents = append(dashboard.HighlightedEvents, dto.NewEventResponse(e))
	}
	for _, p := range posts {
		dashboard.RecentPosts = append(dashboard.RecentPosts, dto.NewPostResponse(p))
	}

	if user.SelectedBusID != nil {
		bus, err := s.busRepo.GetByID(ctx, *user.SelectedBusID)
		if err == nil {
			dashboard.SelectedBus = dto.NewBusResponse(bus)
		} else if err != apperrors.ErrBusNotFound {
			return nil, err
		}
	}

	return dashboard, nil
}
