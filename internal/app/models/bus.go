package models

import (
	"time"
)

// Bus defines the bus model based on the 'buses' table
type Bus struct {
	ID               int64      `json:"id" db:"id"`
	BusNumber        string     `json:"busNumber" db:"bus_number" example:"UP16A 1234"` // Registration number, unique
	RouteDescription *string    `json:"routeDescription,omitempty" db:"route_description"`
	IsActive         bool       `json:"isActive" db:"is_active"`
	CurrentLat       *float64   `json:"currentLat,omitempty" db:"current_lat"` // Last reported latitude (nullable until first report)
	CurrentLng       *float64   `json:"currentLng,omitempty" db:"current_lng"`
	LastUpdated      *time.Time `json:"lastUpdated,omitempty" db:"last_updated"` // Server time of the last location report
	DriverID         *int64     `json:"driverId,omitempty" db:"driver_id"`       // Assigned driver, at most one
	Stops            []*BusStop `json:"stops,omitempty"`                         // Relation, no db tag
}

// BusStop defines a stop on a bus route based on the 'bus_stops' table.
// IsCrossed is modeled in the schema but no endpoint writes it.
type BusStop struct {
	ID        int64   `json:"id" db:"id"`
	BusID     int64   `json:"busId" db:"bus_id"`
	StopName  string  `json:"stopName" db:"stop_name"`
	StopOrder int     `json:"stopOrder" db:"stop_order"` // Position along the route, ascending
	Lat       float64 `json:"lat" db:"lat"`
	Lng       float64 `json:"lng" db:"lng"`
	IsCrossed bool    `json:"isCrossed" db:"is_crossed"`
}

// Driver defines the driver model based on the 'drivers' table
type Driver struct {
	ID                int64  `json:"id" db:"id"`
	Name              string `json:"name" db:"name"`
	PasswordHash      string `json:"-" db:"password_hash"`
	AssignedBusID     *int64 `json:"assignedBusId,omitempty" db:"assigned_bus_id"`
	IsSharingLocation bool   `json:"isSharingLocation" db:"is_sharing_location"`
}
