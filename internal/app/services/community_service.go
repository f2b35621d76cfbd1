package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

const feedPostLimit = 50

// bannedWords are rejected anywhere in a post, case-insensitive
var bannedWords = []string{"spam", "abuse", "offensive"}

// CommunityService handles the community feed and club memberships
type CommunityService struct {
	postRepo *repositories.PostRepository
	clubRepo *repositories.ClubRepository
	logger   zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(
	postRepo *repositories.PostRepository,
	clubRepo *repositories.ClubRepository,
	logger zerolog.Logger,
) *CommunityService {
	return &CommunityService{
		postRepo: postRepo,
		clubRepo: clubRepo,
		logger:   logger,
	}
}

// ContainsBannedWord reports whether the content trips the word filter
func ContainsBannedWord(content string) bool {
	lowered := strings.ToLower(content)
	for _, word := range bannedWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

// ListPosts retrieves the community feed, newest first
func (s *CommunityService) ListPosts(ctx context.Context) ([]*models.CommunityPost, error) {
	return s.postRepo.GetAll(ctx, feedPostLimit)
}

// CreatePost publishes a feed entry after passing the content filter
func (s *CommunityService) CreatePost(ctx context.Context, userID int64, req dto.CreatePostRequest) (*models.CommunityPost, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewBadRequestError("content cannot be empty")
	}
	if ContainsBannedWord(content) {
		return nil, apperrors.ErrInappropriateContent
	}

	post := &models.CommunityPost{
		UserID:   userID,
		Content:  content,
		PostType: req.PostType,
	}
	if _, err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postId", post.ID).Int64("userId", userID).Msg("Post created")
	return post, nil
}

// LikePost increments the like counter of a post
func (s *CommunityService) LikePost(ctx context.Context, postID int64) (int, error) {
	return s.postRepo.IncrementLikes(ctx, postID)
}

// ListClubs retrieves all clubs annotated with the caller's membership
func (s *CommunityService) ListClubs(ctx context.Context, userID int64) ([]*dto.ClubResponse, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := s.clubRepo.GetMembershipClubIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		responses = append(responses, dto.NewClubResponse(club, memberships[club.ID]))
	}
	return responses, nil
}

// JoinClub records a membership. Joining a club twice is reported, not
// treated as a failure.
func (s *CommunityService) JoinClub(ctx context.Context, userID, clubID int64) error {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return err
	}

	isMember, err := s.clubRepo.IsMember(ctx, userID, clubID)
	if err != nil {
		return err
	}
	if isMember {
		return apperrors.ErrAlreadyMember
	}

	if err := s.clubRepo.AddMember(ctx, userID, clubID); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", userID).Int64("clubId", clubID).Msg("Club joined")
	return nil
}
