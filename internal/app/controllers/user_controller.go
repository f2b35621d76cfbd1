package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// UserController handles profile and dashboard endpoints
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// Me handles GET /users/me
func (c *UserController) Me(ctx *gin.Context) {
	user, err := c.userService.GetProfile(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile handles PUT /users/me/profile
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// SelectBus handles PUT /users/me/bus
func (c *UserController) SelectBus(ctx *gin.Context) {
	var req dto.SelectBusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	user, err := c.userService.SelectBus(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Dashboard handles GET /users/me/dashboard
func (c *UserController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.userService.GetDashboard(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
