package dto

import (
	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// DriverResponse represents driver account information
type DriverResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	AssignedBusID     *int64 `json:"assignedBusId,omitempty"`
	IsSharingLocation bool   `json:"isSharingLocation"`
}

// NewDriverResponse maps a driver model to its response form
func NewDriverResponse(driver *models.Driver) *DriverResponse {
	return &DriverResponse{
		ID:                driver.ID,
		Name:              driver.Name,
		AssignedBusID:     driver.AssignedBusID,
		IsSharingLocation: driver.IsSharingLocation,
	}
}

// UpdateLocationRequest carries a driver's location report
type UpdateLocationRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// ToggleLocationResponse reports the new sharing state
type ToggleLocationResponse struct {
	Message           string `json:"message"`
	IsSharingLocation bool   `json:"isSharingLocation"`
}
