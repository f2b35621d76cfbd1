package dto

import (
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ProfileImage  *string `json:"profileImage,omitempty"`
	Course        *string `json:"course,omitempty"`
	Branch        *string `json:"branch,omitempty"`
	Batch         *string `json:"batch,omitempty"`
	Year          *int    `json:"year,omitempty"`
	SelectedBusID *int64  `json:"selectedBusId,omitempty"`
	SelectedStop  *string `json:"selectedStop,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewUserResponse maps a user model to its response form
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		ProfileImage:  user.ProfileImage,
		Course:        user.Course,
		Branch:        user.Branch,
		Batch:         user.Batch,
		Year:          user.Year,
		SelectedBusID: user.SelectedBusID,
		SelectedStop:  user.SelectedStop,
		CreatedAt:     user.CreatedAt,
	}
}

// UpdateProfileRequest represents profile update data. Omitted fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Course *string `json:"course"`
	Branch *string `json:"branch"`
	Batch  *string `json:"batch"`
	Year   *int    `json:"year" binding:"omitempty,min=1,max=6"`
}

// SelectBusRequest represents the user's bus and stop preference
type SelectBusRequest struct {
	BusID        int64   `json:"busId" binding:"required,min=1"`
	SelectedStop *string `json:"selectedStop"`
}

// DashboardResponse aggregates the data the home screen needs in one call
type DashboardResponse struct {
	User              *UserResponse        `json:"user"`
	UpcomingEvents    []*EventResponse     `json:"upcomingEvents"`
	HighlightedEvents []*EventResponse     `json:"highlightedEvents"`
	RecentPosts       []*PostResponse      `json:"recentPosts"`
	SelectedBus       *BusResponse         `json:"selectedBus,omitempty"`
}
