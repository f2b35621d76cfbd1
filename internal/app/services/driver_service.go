package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// DriverService handles driver-side tracking operations
type DriverService struct {
	driverRepo *repositories.DriverRepository
	busRepo    *repositories.BusRepository
	logger     zerolog.Logger
}

// NewDriverService creates a new DriverService
func NewDriverService(
	driverRepo *repositories.DriverRepository,
	busRepo *repositories.BusRepository,
	logger zerolog.Logger,
) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		busRepo:    busRepo,
		logger:     logger,
	}
}

// GetDriver retrieves the driver behind a session
func (s *DriverService) GetDriver(ctx context.Context, driverID int64) (*models.Driver, error) {
	return s.driverRepo.GetByID(ctx, driverID)
}

// ToggleLocationSharing flips the driver's sharing flag and returns the new
// state
func (s *DriverService) ToggleLocationSharing(ctx context.Context, driverID int64) (bool, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return false, err
	}

	newState := !driver.IsSharingLocation
	if err := s.driverRepo.SetSharingLocation(ctx, driverID, newState); err != nil {
		return false, err
	}

	s.logger.Info().
		Int64("driverId", driverID).
		Bool("sharing", newState).
		Msg("Location sharing toggled")
	return newState, nil
}

// UpdateLocation records a location report against the driver's assigned bus.
// A driver without an assigned bus cannot report.
func (s *DriverService) UpdateLocation(ctx context.Context, driverID int64, req dto.UpdateLocationRequest) error {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return err
	}

	if driver.AssignedBusID == nil {
		return apperrors.ErrNoAssignedBus
	}

	return s.busRepo.UpdateLocation(ctx, *driver.AssignedBusID, req.Lat, req.Lng, time.Now())
}
