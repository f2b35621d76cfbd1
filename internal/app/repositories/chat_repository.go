package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// ChatRepository handles database operations for AI tutor chat history and
// per-user tutor preferences
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts one tutor exchange
func (r *ChatRepository) Create(ctx context.Context, entry *models.ChatHistory) (int64, error) {
	query := `
		INSERT INTO chat_history (user_id, mode, message, response)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Mode, entry.Message, entry.Response).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating chat history entry: %w", err)
	}
	return entry.ID, nil
}

// GetByUserID retrieves a user's chat history, newest first, optionally
// filtered by mode
func (r *ChatRepository) GetByUserID(ctx context.Context, userID int64, mode *models.TutorMode, limit int) ([]*models.ChatHistory, error) {
	queryBuilder := squirrel.Select("id", "user_id", "mode", "message", "response", "created_at").
		From("chat_history").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if mode != nil {
		queryBuilder = queryBuilder.Where("mode = ?", *mode)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing chat history: %w", err)
	}
	defer rows.Close()

	var entries []*models.ChatHistory
	for rows.Next() {
		var entry models.ChatHistory
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Mode,
			&entry.Message,
			&entry.Response,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat history entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat history: %w", err)
	}
	return entries, nil
}

// UpsertPreferences records the mode a user last chatted in
func (r *ChatRepository) UpsertPreferences(ctx context.Context, userID int64, mode models.TutorMode) error {
	query := `
		INSERT INTO user_ai_preferences (user_id, last_mode)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET last_mode = EXCLUDED.last_mode, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.Exec(ctx, query, userID, mode); err != nil {
		return fmt.Errorf("error upserting tutor preferences: %w", err)
	}
	return nil
}

// GetPreferences retrieves a user's tutor preferences, nil when none exist
func (r *ChatRepository) GetPreferences(ctx context.Context, userID int64) (*models.AIPreferences, error) {
	query := `
		SELECT id, user_id, last_mode, updated_at
		FROM user_ai_preferences
		WHERE user_id = $1
	`
	var prefs models.AIPreferences
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.ID,
		&prefs.UserID,
		&prefs.LastMode,
		&prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving tutor preferences: %w", err)
	}
	return &prefs, nil
}
