package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/auth"
)

func newGuardRouter(guard *SessionGuard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", guard.UserAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": PrincipalIDFromContext(c)})
	})
	return router
}

func TestGuardRejectsMissingCookie(t *testing.T) {
	guard := NewSessionGuard(auth.NewTokenService("test-secret"), nil)
	router := newGuardRouter(guard)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGuardRejectsForgedCookie(t *testing.T) {
	guard := NewSessionGuard(auth.NewTokenService("test-secret"), nil)
	router := newGuardRouter(guard)

	// a token signed with a different secret must never reach the store
	foreign := auth.NewTokenService("other-secret")
	cookieValue, _, err := foreign.Issue()
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: UserSessionCookie, Value: cookieValue})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGuardRejectsGarbageCookie(t *testing.T) {
	guard := NewSessionGuard(auth.NewTokenService("test-secret"), nil)
	router := newGuardRouter(guard)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: UserSessionCookie, Value: "not-a-token"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSessionFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := SessionFromContext(c)
	assert.False(t, ok)
	assert.Equal(t, int64(0), PrincipalIDFromContext(c))

	session := &models.Session{
		ID:            1,
		PrincipalType: models.PrincipalUser,
		PrincipalID:   42,
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	c.Set(ContextSessionKey, session)
	c.Set(ContextPrincipalIDKey, session.PrincipalID)

	got, ok := SessionFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, session, got)
	assert.Equal(t, int64(42), PrincipalIDFromContext(c))
}
