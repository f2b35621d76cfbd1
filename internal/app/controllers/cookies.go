package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setSessionCookie writes a signed session cookie. Expiry on the cookie is a
// hint for the browser; the guard enforces the server-side expiry.
func setSessionCookie(c *gin.Context, name, value string, expiresAt time.Time, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires a session cookie immediately
func clearSessionCookie(c *gin.Context, name string, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
