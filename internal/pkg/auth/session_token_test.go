package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	cookieValue, tokenHash, err := svc.Issue()
	require.NoError(t, err)
	assert.Contains(t, cookieValue, ".")
	assert.Len(t, tokenHash, 64) // hex sha256

	verifiedHash, err := svc.Verify(cookieValue)
	require.NoError(t, err)
	assert.Equal(t, tokenHash, verifiedHash)
}

func TestIssueProducesUniqueTokens(t *testing.T) {
	svc := NewTokenService("test-secret")

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		_, hash, err := svc.Issue()
		require.NoError(t, err)
		assert.False(t, seen[hash], "token hash repeated")
		seen[hash] = true
	}
}

func TestVerifyRejectsMalformedValues(t *testing.T) {
	svc := NewTokenService("test-secret")

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no separator", "tokenwithoutsignature"},
		{"empty token", ".signature"},
		{"empty signature", "token."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.value)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	cookieValue, _, err := svc.Issue()
	require.NoError(t, err)

	token, sig, _ := strings.Cut(cookieValue, ".")
	tampered := token + "x." + sig

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	cookieValue, _, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Verify(cookieValue)
	assert.ErrorIs(t, err, ErrTokenSignature)
}
