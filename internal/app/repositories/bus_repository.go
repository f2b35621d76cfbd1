package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// BusRepository handles database operations for buses and their stops
type BusRepository struct {
	db *pgxpool.Pool
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db *pgxpool.Pool) *BusRepository {
	return &BusRepository{db: db}
}

// GetAll retrieves all active buses ordered by bus number
func (r *BusRepository) GetAll(ctx context.Context) ([]*models.Bus, error) {
	query := `
		SELECT id, bus_number, route_description, is_active, current_lat, current_lng,
		       last_updated, driver_id
		FROM buses
		WHERE is_active = TRUE
		ORDER BY bus_number
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing buses: %w", err)
	}
	defer rows.Close()

	var buses []*models.Bus
	for rows.Next() {
		var bus models.Bus
		err := rows.Scan(
			&bus.ID,
			&bus.BusNumber,
			&bus.RouteDescription,
			&bus.IsActive,
			&bus.CurrentLat,
			&bus.CurrentLng,
			&bus.LastUpdated,
			&bus.DriverID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning bus: %w", err)
		}
		buses = append(buses, &bus)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buses: %w", err)
	}
	return buses, nil
}

// GetByID retrieves a bus by ID
func (r *BusRepository) GetByID(ctx context.Context, id int64) (*models.Bus, error) {
	query := `
		SELECT id, bus_number, route_description, is_active, current_lat, current_lng,
		       last_updated, driver_id
		FROM buses
		WHERE id = $1
	`
	var bus models.Bus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bus.ID,
		&bus.BusNumber,
		&bus.RouteDescription,
		&bus.IsActive,
		&bus.CurrentLat,
		&bus.CurrentLng,
		&bus.LastUpdated,
		&bus.DriverID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBusNotFound
		}
		return nil, fmt.Errorf("error retrieving bus: %w", err)
	}
	return &bus, nil
}

// GetStops retrieves the stops of a bus ordered along the route
func (r *BusRepository) GetStops(ctx context.Context, busID int64) ([]*models.BusStop, error) {
	query := `
		SELECT id, bus_id, stop_name, stop_order, lat, lng, is_crossed
		FROM bus_stops
		WHERE bus_id = $1
		ORDER BY stop_order
	`
	rows, err := r.db.Query(ctx, query, busID)
	if err != nil {
		return nil, fmt.Errorf("error listing bus stops: %w", err)
	}
	defer rows.Close()

	var stops []*models.BusStop
	for rows.Next() {
		var stop models.BusStop
		err := rows.Scan(
			&stop.ID,
			&stop.BusID,
			&stop.StopName,
			&stop.StopOrder,
			&stop.Lat,
			&stop.Lng,
			&stop.IsCrossed,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning bus stop: %w", err)
		}
		stops = append(stops, &stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bus stops: %w", err)
	}
	return stops, nil
}

// UpdateLocation records a location report for a bus
func (r *BusRepository) UpdateLocation(ctx context.Context, busID int64, lat, lng float64, reportedAt time.Time) error {
	query := `UPDATE buses SET current_lat = $1, current_lng = $2, last_updated = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, query, lat, lng, reportedAt, busID)
	if err != nil {
		return fmt.Errorf("error updating bus location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBusNotFound
	}
	return nil
}

// CountBuses returns the total number of buses
func (r *BusRepository) CountBuses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM buses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting buses: %w", err)
	}
	return count, nil
}
