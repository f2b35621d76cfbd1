package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name            string     `json:"name" db:"name" example:"John Doe"`                        // User's display name
	Email           string     `json:"email" db:"email" example:"john.doe@example.com"`          // User's email address
	PasswordHash    string     `json:"-" db:"password_hash"`                                     // Hashed password (excluded from JSON)
	ProfileImage    *string    `json:"profileImage,omitempty" db:"profile_image"`                // Profile image path (nullable)
	Course          *string    `json:"course,omitempty" db:"course" example:"B.Tech"`            // Enrolled course
	Branch          *string    `json:"branch,omitempty" db:"branch" example:"Computer Science"`  // Branch within the course
	Batch           *string    `json:"batch,omitempty" db:"batch" example:"2025"`                // Graduation batch
	Year            *int       `json:"year,omitempty" db:"year" example:"3"`                     // Current academic year
	SelectedBusID   *int64     `json:"selectedBusId,omitempty" db:"selected_bus_id"`             // Bus the user tracks (nullable)
	SelectedStop    *string    `json:"selectedStop,omitempty" db:"selected_stop"`                // Preferred stop on that bus
	LoginStatus     bool       `json:"loginStatus" db:"login_status"`                            // True while a session is active
	LastLoginDevice *string    `json:"lastLoginDevice,omitempty" db:"last_login_device"`         // User-Agent of the last login
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}

// TempUser defines a pending registration based on the 'temp_users' table.
// Rows are promoted into users on verification and deleted on expiry.
type TempUser struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	VerificationToken string    `json:"-" db:"verification_token"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt         time.Time `json:"expiresAt" db:"expires_at"`
}
