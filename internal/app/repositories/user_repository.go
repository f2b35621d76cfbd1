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
	"github.com/anantsaxena14/campus-sphere/internal/pkg/dberrors"
)

// UserRepository handles database operations for users and pending
// registrations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// TempEmailExists checks if an email has a pending, unexpired registration
func (r *UserRepository) TempEmailExists(ctx context.Context, email string, now time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM temp_users WHERE email = $1 AND expires_at > $2)`
	if err := r.db.QueryRow(ctx, query, email, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking pending email existence: %w", err)
	}
	return exists, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, profile_image, course, branch, batch, year,
		       selected_bus_id, selected_stop, login_status, last_login_device, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, profile_image, course, branch, batch, year,
		       selected_bus_id, selected_stop, login_status, last_login_device, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.ProfileImage,
		&user.Course,
		&user.Branch,
		&user.Batch,
		&user.Year,
		&user.SelectedBusID,
		&user.SelectedStop,
		&user.LoginStatus,
		&user.LastLoginDevice,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// Create inserts a verified user
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return user.ID, nil
}

// UpdateProfile updates the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, course = $2, branch = $3, batch = $4, year = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		user.Name, user.Course, user.Branch, user.Batch, user.Year, user.ID)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateBusSelection sets the bus and stop the user tracks
func (r *UserRepository) UpdateBusSelection(ctx context.Context, userID int64, busID *int64, stop *string) error {
	query := `UPDATE users SET selected_bus_id = $1, selected_stop = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, query, busID, stop, userID)
	if err != nil {
		return fmt.Errorf("error updating bus selection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLoginState records whether the account has an active session and the
// device it last logged in from
func (r *UserRepository) UpdateLoginState(ctx context.Context, userID int64, loggedIn bool, device *string) error {
	query := `UPDATE users SET login_status = $1, last_login_device = $2 WHERE id = $3`
	if _, err := r.db.Exec(ctx, query, loggedIn, device, userID); err != nil {
		return fmt.Errorf("error updating login state: %w", err)
	}
	return nil
}

// CountUsers returns the total number of registered users
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// CreateTempUser stores a pending registration. The upsert only ever replaces
// an expired row for the same email; the service rejects signups while an
// unexpired pending row exists.
func (r *UserRepository) CreateTempUser(ctx context.Context, temp *models.TempUser) error {
	query := `
		INSERT INTO temp_users (name, email, password_hash, verification_token, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
		    password_hash = EXCLUDED.password_hash,
		    verification_token = EXCLUDED.verification_token,
		    created_at = CURRENT_TIMESTAMP,
		    expires_at = EXCLUDED.expires_at
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		temp.Name, temp.Email, temp.PasswordHash, temp.VerificationToken, temp.ExpiresAt).
		Scan(&temp.ID, &temp.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating pending registration: %w", err)
	}
	return nil
}

// GetTempUserByToken retrieves a pending registration by its verification token
func (r *UserRepository) GetTempUserByToken(ctx context.Context, token string) (*models.TempUser, error) {
	query := `
		SELECT id, name, email, password_hash, verification_token, created_at, expires_at
		FROM temp_users
		WHERE verification_token = $1
	`
	var temp models.TempUser
	err := r.db.QueryRow(ctx, query, token).Scan(
		&temp.ID,
		&temp.Name,
		&temp.Email,
		&temp.PasswordHash,
		&temp.VerificationToken,
		&temp.CreatedAt,
		&temp.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVerificationTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving pending registration: %w", err)
	}
	return &temp, nil
}

// DeleteTempUser removes a pending registration
func (r *UserRepository) DeleteTempUser(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM temp_users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting pending registration: %w", err)
	}
	return nil
}

// DeleteExpiredTempUsers removes pending registrations past their expiry
func (r *UserRepository) DeleteExpiredTempUsers(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM temp_users WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired registrations: %w", err)
	}
	return tag.RowsAffected(), nil
}
