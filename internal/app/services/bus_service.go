package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// BusService handles bus listing and live tracking reads
type BusService struct {
	busRepo    *repositories.BusRepository
	driverRepo *repositories.DriverRepository
	logger     zerolog.Logger
}

// NewBusService creates a new BusService
func NewBusService(
	busRepo *repositories.BusRepository,
	driverRepo *repositories.DriverRepository,
	logger zerolog.Logger,
) *BusService {
	return &BusService{
		busRepo:    busRepo,
		driverRepo: driverRepo,
		logger:     logger,
	}
}

// ListBuses retrieves all active buses
func (s *BusService) ListBuses(ctx context.Context) ([]*models.Bus, error) {
	return s.busRepo.GetAll(ctx)
}

// GetBusData retrieves a bus together with its ordered stop list
func (s *BusService) GetBusData(ctx context.Context, busID int64) (*dto.BusDataResponse, error) {
	bus, err := s.busRepo.GetByID(ctx, busID)
	if err != nil {
		return nil, err
	}

	stops, err := s.busRepo.GetStops(ctx, busID)
	if err != nil {
		return nil, err
	}

	data := &dto.BusDataResponse{
		Bus:   dto.NewBusResponse(bus),
		Stops: make([]*dto.BusStopResponse, 0, len(stops)),
	}
	for _, stop := range stops {
		data.Stops = append(data.Stops, dto.NewBusStopResponse(stop))
	}
	return data, nil
}

// GetBusLocation retrieves the last reported position of a bus. Clients poll
// this endpoint while tracking.
func (s *BusService) GetBusLocation(ctx context.Context, busID int64) (*dto.BusLocationResponse, error) {
	bus, err := s.busRepo.GetByID(ctx, busID)
	if err != nil {
		return nil, err
	}

	sharing := false
	driver, err := s.driverRepo.GetByBusID(ctx, busID)
	if err == nil {
		sharing = driver.IsSharingLocation
	} else if err != apperrors.ErrDriverNotFound {
		return nil, err
	}

	return &dto.BusLocationResponse{
		BusID:             bus.ID,
		Lat:               bus.CurrentLat,
		Lng:               bus.CurrentLng,
		LastUpdated:       bus.LastUpdated,
		IsSharingLocation: sharing,
	}, nil
}
