package dto

import (
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// AdminResponse represents admin account information
type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewAdminResponse maps an admin model to its response form
func NewAdminResponse(admin *models.Admin) *AdminResponse {
	return &AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}
}

// AdminDashboardResponse aggregates the counters the admin panel shows
type AdminDashboardResponse struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalBuses     int64 `json:"totalBuses"`
	TotalResources int64 `json:"totalResources"`
	TotalEvents    int64 `json:"totalEvents"`
	TotalClubs     int64 `json:"totalClubs"`
	TotalPosts     int64 `json:"totalPosts"`
}

// CreateEventRequest represents an admin-created campus event
type CreateEventRequest struct {
	Title            string    `json:"title" binding:"required"`
	Description      *string   `json:"description"`
	EventDate        time.Time `json:"eventDate" binding:"required"`
	Venue            *string   `json:"venue"`
	RegistrationLink *string   `json:"registrationLink"`
	IsHighlighted    bool      `json:"isHighlighted"`
	EventType        *string   `json:"eventType"`
}

// CreateClubRequest represents an admin-created student club
type CreateClubRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ClubType    *string `json:"clubType"`
	SecretaryID *int64  `json:"secretaryId"`
}
