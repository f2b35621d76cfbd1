package models

import (
	"time"
)

// Event defines a campus event based on the 'events' table
type Event struct {
	ID               int64     `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      *string   `json:"description,omitempty" db:"description"`
	EventDate        time.Time `json:"eventDate" db:"event_date"`
	Venue            *string   `json:"venue,omitempty" db:"venue"`
	RegistrationLink *string   `json:"registrationLink,omitempty" db:"registration_link"`
	IsHighlighted    bool      `json:"isHighlighted" db:"is_highlighted"`
	EventType        *string   `json:"eventType,omitempty" db:"event_type" example:"Workshop"`
	HighlightImages  *string   `json:"highlightImages,omitempty" db:"highlight_images"`
}
