package models

import (
	"time"
)

// PrincipalType identifies which kind of account a session belongs to
type PrincipalType string

const (
	PrincipalUser   PrincipalType = "USER"
	PrincipalDriver PrincipalType = "DRIVER"
	PrincipalAdmin  PrincipalType = "ADMIN"
)

// Session defines a server-side session record based on the 'sessions' table.
// The client holds only a signed opaque token; the hash stored here is what
// the guard compares against, and expiry is enforced from ExpiresAt rather
// than trusted from cookie max-age.
type Session struct {
	ID            int64         `json:"id" db:"id"`
	PrincipalType PrincipalType `json:"principalType" db:"principal_type"`
	PrincipalID   int64         `json:"principalId" db:"principal_id"`
	TokenHash     string        `json:"-" db:"token_hash"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	ExpiresAt     time.Time     `json:"expiresAt" db:"expires_at"`
}
