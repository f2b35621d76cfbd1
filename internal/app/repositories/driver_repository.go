package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// DriverRepository handles database operations for drivers
type DriverRepository struct {
	db *pgxpool.Pool
}

// NewDriverRepository creates a new DriverRepository
func NewDriverRepository(db *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{db: db}
}

// GetByName retrieves a driver by name
func (r *DriverRepository) GetByName(ctx context.Context, name string) (*models.Driver, error) {
	query := `
		SELECT id, name, password_hash, assigned_bus_id, is_sharing_location
		FROM drivers
		WHERE name = $1
	`
	return r.scanDriver(r.db.QueryRow(ctx, query, name))
}

// GetByID retrieves a driver by ID
func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	query := `
		SELECT id, name, password_hash, assigned_bus_id, is_sharing_location
		FROM drivers
		WHERE id = $1
	`
	return r.scanDriver(r.db.QueryRow(ctx, query, id))
}

// GetByBusID retrieves the driver assigned to a bus
func (r *DriverRepository) GetByBusID(ctx context.Context, busID int64) (*models.Driver, error) {
	query := `
		SELECT id, name, password_hash, assigned_bus_id, is_sharing_location
		FROM drivers
		WHERE assigned_bus_id = $1
	`
	return r.scanDriver(r.db.QueryRow(ctx, query, busID))
}

func (r *DriverRepository) scanDriver(row pgx.Row) (*models.Driver, error) {
	var driver models.Driver
	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.PasswordHash,
		&driver.AssignedBusID,
		&driver.IsSharingLocation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("error retrieving driver: %w", err)
	}
	return &driver, nil
}

// SetSharingLocation updates the driver's location sharing flag
func (r *DriverRepository) SetSharingLocation(ctx context.Context, driverID int64, sharing bool) error {
	query := `UPDATE drivers SET is_sharing_location = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, sharing, driverID)
	if err != nil {
		return fmt.Errorf("error updating location sharing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriverNotFound
	}
	return nil
}
