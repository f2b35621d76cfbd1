package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// DriverController handles driver authentication and tracking endpoints
type DriverController struct {
	authService   *services.AuthService
	driverService *services.DriverService
	cookieSecure  bool
	logger        zerolog.Logger
}

// NewDriverController creates a new DriverController
func NewDriverController(
	authService *services.AuthService,
	driverService *services.DriverService,
	cookieSecure bool,
	logger zerolog.Logger,
) *DriverController {
	return &DriverController{
		authService:   authService,
		driverService: driverService,
		cookieSecure:  cookieSecure,
		logger:        logger,
	}
}

// Login handles POST /driver/login
func (c *DriverController) Login(ctx *gin.Context) {
	var req dto.DriverLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	driver, session, err := c.authService.LoginDriver(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, middleware.DriverSessionCookie, session.CookieValue, session.ExpiresAt, c.cookieSecure)
	ctx.JSON(http.StatusOK, dto.DriverLoginResponse{
		Message: "Login successful",
		Driver:  dto.NewDriverResponse(driver),
	})
}

// Me handles GET /driver/me
func (c *DriverController) Me(ctx *gin.Context) {
	driver, err := c.driverService.GetDriver(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDriverResponse(driver))
}

// ToggleLocation handles POST /driver/toggle-location
func (c *DriverController) ToggleLocation(ctx *gin.Context) {
	sharing, err := c.driverService.ToggleLocationSharing(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Location sharing stopped"
	if sharing {
		message = "Location sharing started"
	}
	ctx.JSON(http.StatusOK, dto.ToggleLocationResponse{
		Message:           message,
		IsSharingLocation: sharing,
	})
}

// UpdateLocation handles POST /driver/update-location
func (c *DriverController) UpdateLocation(ctx *gin.Context) {
	var req dto.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.driverService.UpdateLocation(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Location updated"})
}

// Logout handles POST /driver/logout
func (c *DriverController) Logout(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), session); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	clearSessionCookie(ctx, middleware.DriverSessionCookie, c.cookieSecure)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}
