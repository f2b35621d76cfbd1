package models

// Admin defines an administrator account based on the 'admins' table
type Admin struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Role         string  `json:"role" db:"role" example:"Super Admin"`
	Permissions  *string `json:"permissions,omitempty" db:"permissions"`
}
