package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/dberrors"
)

// ClubRepository handles database operations for clubs and memberships
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{db: db}
}

// GetAll retrieves all clubs with member counts
func (r *ClubRepository) GetAll(ctx context.Context) ([]*models.Club, error) {
	query := `
		SELECT c.id, c.name, c.description, c.club_type, c.secretary_id,
		       COUNT(cm.id) AS member_count
		FROM clubs c
		LEFT JOIN club_memberships cm ON cm.club_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		var club models.Club
		err := rows.Scan(
			&club.ID,
			&club.Name,
			&club.Description,
			&club.ClubType,
			&club.SecretaryID,
			&club.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning club: %w", err)
		}
		clubs = append(clubs, &club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clubs: %w", err)
	}
	return clubs, nil
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	query := `
		SELECT id, name, description, club_type, secretary_id
		FROM clubs
		WHERE id = $1
	`
	var club models.Club
	err := r.db.QueryRow(ctx, query, id).Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.ClubType,
		&club.SecretaryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("error retrieving club: %w", err)
	}
	return &club, nil
}

// Create inserts a new club
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) (int64, error) {
	query := `
		INSERT INTO clubs (name, description, club_type, secretary_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		club.Name, club.Description, club.ClubType, club.SecretaryID).
		Scan(&club.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "clubs_name_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating club: %w", err)
	}
	return club.ID, nil
}

// IsMember reports whether a user has a membership row for the club
func (r *ClubRepository) IsMember(ctx context.Context, userID, clubID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM club_memberships WHERE user_id = $1 AND club_id = $2)`
	if err := r.db.QueryRow(ctx, query, userID, clubID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking club membership: %w", err)
	}
	return exists, nil
}

// GetMembershipClubIDs returns the club IDs a user belongs to
func (r *ClubRepository) GetMembershipClubIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT club_id FROM club_memberships WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing memberships: %w", err)
	}
	defer rows.Close()

	clubIDs := make(map[int64]bool)
	for rows.Next() {
		var clubID int64
		if err := rows.Scan(&clubID); err != nil {
			return nil, fmt.Errorf("error scanning membership: %w", err)
		}
		clubIDs[clubID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}
	return clubIDs, nil
}

// AddMember records a club membership
func (r *ClubRepository) AddMember(ctx context.Context, userID, clubID int64) error {
	query := `INSERT INTO club_memberships (user_id, club_id) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, query, userID, clubID); err != nil {
		return fmt.Errorf("error adding club member: %w", err)
	}
	return nil
}

// CountClubs returns the total number of clubs
func (r *ClubRepository) CountClubs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clubs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting clubs: %w", err)
	}
	return count, nil
}
