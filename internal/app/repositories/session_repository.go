package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// SessionRepository handles database operations for server-side sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (principal_type, principal_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		session.PrincipalType, session.PrincipalID, session.TokenHash, session.ExpiresAt).
		Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

// GetByTokenHash retrieves a session by its token hash
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	query := `
		SELECT id, principal_type, principal_id, token_hash, created_at, expires_at
		FROM sessions
		WHERE token_hash = $1
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.PrincipalType,
		&session.PrincipalID,
		&session.TokenHash,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	return &session, nil
}

// Delete removes a session by its token hash
func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteForPrincipal removes every session held by a principal. Used by
// force logout and by logout itself.
func (r *SessionRepository) DeleteForPrincipal(ctx context.Context, principalType models.PrincipalType, principalID int64) (int64, error) {
	query := `DELETE FROM sessions WHERE principal_type = $1 AND principal_id = $2`
	tag, err := r.db.Exec(ctx, query, principalType, principalID)
	if err != nil {
		return 0, fmt.Errorf("error deleting principal sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// HasActiveSession reports whether the principal has a non-expired session
func (r *SessionRepository) HasActiveSession(ctx context.Context, principalType models.PrincipalType, principalID int64, now time.Time) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM sessions
			WHERE principal_type = $1 AND principal_id = $2 AND expires_at > $3
		)
	`
	if err := r.db.QueryRow(ctx, query, principalType, principalID, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking active session: %w", err)
	}
	return exists, nil
}

// DeleteExpired removes sessions past their expiry
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
