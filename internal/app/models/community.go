package models

import (
	"time"
)

// Club defines a student club based on the 'clubs' table
type Club struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	ClubType    *string `json:"clubType,omitempty" db:"club_type"`
	SecretaryID *int64  `json:"secretaryId,omitempty" db:"secretary_id"` // Student running the club
	MemberCount int     `json:"memberCount"`                             // Aggregate, no db tag
}

// ClubMembership defines a join request based on the 'club_memberships' table.
// IsVerified and VerifiedBy are modeled in the schema; no endpoint mutates
// them yet.
type ClubMembership struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"userId" db:"user_id"`
	ClubID     int64  `json:"clubId" db:"club_id"`
	IsVerified bool   `json:"isVerified" db:"is_verified"`
	VerifiedBy *int64 `json:"verifiedBy,omitempty" db:"verified_by"`
}

// CommunityPost defines a feed entry based on the 'community_posts' table
type CommunityPost struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Content    string    `json:"content" db:"content"`
	PostType   *string   `json:"postType,omitempty" db:"post_type" example:"Announcement"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Likes      int       `json:"likes" db:"likes"` // Like counter, only ever incremented
	AuthorName *string   `json:"authorName,omitempty"` // Relation, no db tag
}
