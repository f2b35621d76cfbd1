package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrTokenMalformed means the cookie value is not a token.signature pair
	ErrTokenMalformed = errors.New("malformed session token")
	// ErrTokenSignature means the signature does not match the token
	ErrTokenSignature = errors.New("session token signature mismatch")
)

// TokenService issues and verifies signed opaque session tokens. The client
// holds "token.signature"; only a SHA-256 hash of the token is persisted, so
// a leaked sessions table cannot be replayed.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given HMAC secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue generates a fresh token. It returns the signed value for the cookie
// and the hash to store in the sessions table.
func (s *TokenService) Issue() (cookieValue string, tokenHash string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	return token + "." + s.sign(token), hashToken(token), nil
}

// Verify checks the signature of a cookie value and returns the hash of the
// embedded token for the session lookup.
func (s *TokenService) Verify(cookieValue string) (string, error) {
	token, sig, ok := strings.Cut(cookieValue, ".")
	if !ok || token == "" || sig == "" {
		return "", ErrTokenMalformed
	}
	if !hmac.Equal([]byte(s.sign(token)), []byte(sig)) {
		return "", ErrTokenSignature
	}
	return hashToken(token), nil
}

func (s *TokenService) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
