package dto

import (
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// CreatePostRequest represents a new community feed entry
type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	PostType *string `json:"postType"`
}

// PostResponse represents a community feed entry
type PostResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Content    string    `json:"content"`
	PostType   *string   `json:"postType,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Likes      int       `json:"likes"`
	AuthorName *string   `json:"authorName,omitempty"`
}

// NewPostResponse maps a post model to its response form
func NewPostResponse(post *models.CommunityPost) *PostResponse {
	return &PostResponse{
		ID:         post.ID,
		UserID:     post.UserID,
		Content:    post.Content,
		PostType:   post.PostType,
		CreatedAt:  post.CreatedAt,
		Likes:      post.Likes,
		AuthorName: post.AuthorName,
	}
}

// LikeResponse reports the new like count after an increment
type LikeResponse struct {
	PostID int64 `json:"postId"`
	Likes  int   `json:"likes"`
}

// ClubResponse represents a student club with its member count
type ClubResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ClubType    *string `json:"clubType,omitempty"`
	MemberCount int     `json:"memberCount"`
	IsMember    bool    `json:"isMember"`
}

// NewClubResponse maps a club model to its response form
func NewClubResponse(club *models.Club, isMember bool) *ClubResponse {
	return &ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		ClubType:    club.ClubType,
		MemberCount: club.MemberCount,
		IsMember:    isMember,
	}
}
