package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// CommunityController handles the community feed and club endpoints
type CommunityController struct {
	communityService *services.CommunityService
	logger           zerolog.Logger
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService *services.CommunityService, logger zerolog.Logger) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		logger:           logger,
	}
}

// Posts handles GET /community/posts
func (c *CommunityController) Posts(ctx *gin.Context) {
	posts, err := c.communityService.ListPosts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, dto.NewPostResponse(p))
	}
	ctx.JSON(http.StatusOK, responses)
}

// CreatePost handles POST /community/posts
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	post, err := c.communityService.CreatePost(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewPostResponse(post))
}

// LikePost handles POST /community/posts/:id/like
func (c *CommunityController) LikePost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	likes, err := c.communityService.LikePost(ctx.Request.Context(), postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LikeResponse{PostID: postID, Likes: likes})
}

// Clubs handles GET /clubs
func (c *CommunityController) Clubs(ctx *gin.Context) {
	clubs, err := c.communityService.ListClubs(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, clubs)
}

// JoinClub handles POST /clubs/:id/join. Joining twice reports membership
// instead of failing.
func (c *CommunityController) JoinClub(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.communityService.JoinClub(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), clubID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Already a member"})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Joined club successfully"})
}
