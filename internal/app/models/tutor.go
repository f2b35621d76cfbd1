package models

import (
	"time"
)

// TutorMode selects the system prompt used for an AI tutor exchange
type TutorMode string

const (
	TutorModeNormal     TutorMode = "normal"
	TutorModePractice   TutorMode = "practice"
	TutorModeCounseling TutorMode = "counseling"
)

// ChatHistory defines one AI tutor exchange based on the 'chat_history' table
type ChatHistory struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Mode      TutorMode `json:"mode" db:"mode"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AIPreferences defines per-user tutor preferences based on the
// 'user_ai_preferences' table. One row per user, upserted on each chat.
type AIPreferences struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	LastMode  TutorMode `json:"lastMode" db:"last_mode"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
