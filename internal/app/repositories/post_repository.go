package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// PostRepository handles database operations for community posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// GetAll retrieves posts with author names, newest first
func (r *PostRepository) GetAll(ctx context.Context, limit int) ([]*models.CommunityPost, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.post_type, p.created_at, p.likes,
		       u.name AS author_name
		FROM community_posts p
		LEFT JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.CommunityPost
	for rows.Next() {
		var post models.CommunityPost
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Content,
			&post.PostType,
			&post.CreatedAt,
			&post.Likes,
			&post.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.CommunityPost) (int64, error) {
	query := `
		INSERT INTO community_posts (user_id, content, post_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, likes
	`
	err := r.db.QueryRow(ctx, query, post.UserID, post.Content, post.PostType).
		Scan(&post.ID, &post.CreatedAt, &post.Likes)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}
	return post.ID, nil
}

// IncrementLikes bumps the like counter and returns the new value
func (r *PostRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	query := `UPDATE community_posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`
	err := r.db.QueryRow(ctx, query, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("error incrementing likes: %w", err)
	}
	return likes, nil
}

// CountPosts returns the total number of posts
func (r *PostRepository) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM community_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}
	return count, nil
}
