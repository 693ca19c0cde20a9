package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signClaims(claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	token, err := IssueSessionToken("user-123", DefaultSessionTTL)
	require.NoError(t, err)

	sub, err := VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	now := time.Now()

	token, err := signClaims(jwt.MapClaims{
		"sub": "user-123",
		"iat": now.Add(-time.Hour).Unix(),
		"exp": now.Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTamperedTokenRejected(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	token, err := IssueSessionToken("user-123", DefaultSessionTTL)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"

	_, err = VerifySessionToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestWrongSecretRejected(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	token, err := IssueSessionToken("user-123", DefaultSessionTTL)
	require.NoError(t, err)

	viper.Set("jwt.secret", "different-secret")
	defer viper.Set("jwt.secret", "test-secret")

	_, err = VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	now := time.Now()

	token, err := signClaims(jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestVerificationTokensAreUnique(t *testing.T) {
	seen := map[string]bool{}

	for range 64 {
		token, err := GenerateVerificationToken()
		require.NoError(t, err)

		assert.Len(t, token, 43) // 32 bytes, base64 without padding
		assert.False(t, seen[token])
		seen[token] = true
	}
}
