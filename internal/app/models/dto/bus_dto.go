package dto

import (
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// BusResponse represents a bus in list and detail endpoints
type BusResponse struct {
	ID               int64    `json:"id"`
	BusNumber        string   `json:"busNumber"`
	RouteDescription *string  `json:"routeDescription,omitempty"`
	IsActive         bool     `json:"isActive"`
	DriverID         *int64   `json:"driverId,omitempty"`
}

// NewBusResponse maps a bus model to its response form
func NewBusResponse(bus *models.Bus) *BusResponse {
	return &BusResponse{
		ID:               bus.ID,
		BusNumber:        bus.BusNumber,
		RouteDescription: bus.RouteDescription,
		IsActive:         bus.IsActive,
		DriverID:         bus.DriverID,
	}
}

// BusStopResponse represents a stop on a route, ordered by stopOrder
type BusStopResponse struct {
	ID        int64   `json:"id"`
	StopName  string  `json:"stopName"`
	StopOrder int     `json:"stopOrder"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	IsCrossed bool    `json:"isCrossed"`
}

// NewBusStopResponse maps a bus stop model to its response form
func NewBusStopResponse(stop *models.BusStop) *BusStopResponse {
	return &BusStopResponse{
		ID:        stop.ID,
		StopName:  stop.StopName,
		StopOrder: stop.StopOrder,
		Lat:       stop.Lat,
		Lng:       stop.Lng,
		IsCrossed: stop.IsCrossed,
	}
}

// BusDataResponse combines a bus with its full stop list
type BusDataResponse struct {
	Bus   *BusResponse       `json:"bus"`
	Stops []*BusStopResponse `json:"stops"`
}

// BusLocationResponse is the polling payload for live tracking
type BusLocationResponse struct {
	BusID             int64      `json:"busId"`
	Lat               *float64   `json:"lat"`
	Lng               *float64   `json:"lng"`
	LastUpdated       *time.Time `json:"lastUpdated"`
	IsSharingLocation bool       `json:"isSharingLocation"`
}
