// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// AuthController handles student signup, verification and session endpoints
type AuthController struct {
	authService  *services.AuthService
	cookieSecure bool
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookieSecure bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Signup handles POST /auth/signup
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.authService.Signup(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "Verification email sent! Please check your inbox.",
		Email:   req.Email,
	})
}

// VerifyEmail handles GET /auth/verify?token=...
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Verification token is required")))
		return
	}

	user, err := c.authService.VerifyEmail(ctx.Request.Context(), token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Email verified successfully! Please login.",
		User:    dto.NewUserResponse(user),
	})
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	user, session, err := c.authService.Login(ctx.Request.Context(), req, ctx.Request.UserAgent())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, middleware.UserSessionCookie, session.CookieValue, session.ExpiresAt, c.cookieSecure)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
	})
}

// Logout handles POST /auth/logout
func (c *AuthController) Logout(ctx *gin.Context) {
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

	clearSessionCookie(ctx, middleware.UserSessionCookie, c.cookieSecure)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}
