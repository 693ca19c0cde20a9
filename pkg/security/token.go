package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const (
	// DefaultSessionTTL applies when a caller doesn't pick a lifetime
	DefaultSessionTTL = 15 * time.Minute

	// LoginSessionTTL is what the login flow hands out. It deliberately
	// differs from DefaultSessionTTL and matches the session cookie max-age.
	LoginSessionTTL = 30 * time.Minute
)

var (
	ErrTokenInvalid   = errors.New("token invalid")
	ErrMissingSubject = errors.New("token has no subject")
)

// IssueSessionToken creates a signed HS256 token asserting the given user
// id until the TTL elapses. Tokens are stateless, nothing is persisted.
func IssueSessionToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// VerifySessionToken checks the signature and expiry of a session token and
// returns the embedded user id. Any failure mode collapses into an error,
// nothing is ever surfaced to the caller beyond that.
func VerifySessionToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMissingSubject
	}

	return sub, nil
}
