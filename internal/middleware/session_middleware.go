package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/auth"
)

// Cookie names per principal kind
const (
	UserSessionCookie   = "user_session"
	DriverSessionCookie = "driver_session"
	AdminSessionCookie  = "admin_session"
)

// Context keys set by the guards
const (
	ContextSessionKey     = "session"
	ContextPrincipalIDKey = "principalId"
)

// SessionGuard validates signed session cookies against stored sessions. All
// three principal kinds get the same checks.
type SessionGuard struct {
	tokenService *auth.TokenService
	sessionRepo  *repositories.SessionRepository
}

// NewSessionGuard creates a new SessionGuard
func NewSessionGuard(tokenService *auth.TokenService, sessionRepo *repositories.SessionRepository) *SessionGuard {
	return &SessionGuard{
		tokenService: tokenService,
		sessionRepo:  sessionRepo,
	}
}

// UserAuth requires a valid student session
func (g *SessionGuard) UserAuth() gin.HandlerFunc {
	return g.guard(UserSessionCookie, models.PrincipalUser)
}

// DriverAuth requires a valid driver session
func (g *SessionGuard) DriverAuth() gin.HandlerFunc {
	return g.guard(DriverSessionCookie, models.PrincipalDriver)
}

// AdminAuth requires a valid admin session
func (g *SessionGuard) AdminAuth() gin.HandlerFunc {
	return g.guard(AdminSessionCookie, models.PrincipalAdmin)
}

func (g *SessionGuard) guard(cookieName string, principalType models.PrincipalType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(cookieName)
		if err != nil || cookieValue == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		tokenHash, err := g.tokenService.Verify(cookieValue)
		if err != nil {
			abortUnauthorized(c, "Invalid session")
			return
		}

		session, err := g.sessionRepo.GetByTokenHash(c.Request.Context(), tokenHash)
		if err != nil {
			abortUnauthorized(c, "Invalid session")
			return
		}

		if session.PrincipalType != principalType {
			abortUnauthorized(c, "Invalid session")
			return
		}

		// Expiry is enforced server-side, never trusted from cookie max-age
		if time.Now().After(session.ExpiresAt) {
			_ = g.sessionRepo.Delete(c.Request.Context(), session.TokenHash)
			abortUnauthorized(c, "Session expired")
			return
		}

		c.Set(ContextSessionKey, session)
		c.Set(ContextPrincipalIDKey, session.PrincipalID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)))
}

// SessionFromContext retrieves the session a guard stored on the context
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}

// PrincipalIDFromContext retrieves the authenticated principal's ID
func PrincipalIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(ContextPrincipalIDKey)
}
