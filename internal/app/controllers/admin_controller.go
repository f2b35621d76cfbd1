package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// AdminController handles admin authentication and content management
type AdminController struct {
	authService  *services.AuthService
	adminService *services.AdminService
	cookieSecure bool
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	authService *services.AuthService,
	adminService *services.AdminService,
	cookieSecure bool,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		authService:  authService,
		adminService: adminService,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Login handles POST /admin/login
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	admin, session, err := c.authService.LoginAdmin(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, middleware.AdminSessionCookie, session.CookieValue, session.ExpiresAt, c.cookieSecure)
	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Message: "Login successful",
		Admin:   dto.NewAdminResponse(admin),
	})
}

// Dashboard handles GET /admin/dashboard
func (c *AdminController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.adminService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

// CreateEvent handles POST /admin/events
func (c *AdminController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	event, err := c.adminService.CreateEvent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewEventResponse(event))
}

// CreateClub handles POST /admin/clubs
func (c *AdminController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	club, err := c.adminService.CreateClub(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewClubResponse(club, false))
}

// Logout handles POST /admin/logout
func (c *AdminController) Logout(ctx *gin.Context) {
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

	clearSessionCookie(ctx, middleware.AdminSessionCookie, c.cookieSecure)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}
