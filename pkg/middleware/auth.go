package middleware

import (
	"net/http"
	"strings"

	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie carries the session token when no Authorization header is
// present. The Bearer header wins when both are supplied.
const SessionCookie = "session_token"

// NewAuthMiddleware gates protected routes. Every failure mode collapses
// into the same 401 so callers can't probe which check tripped. The token's
// subject is re-checked against the store, a signed token for a deleted
// user is worthless.
func NewAuthMiddleware(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		reject := func() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Could not validate credentials",
				"requestID": requestID,
			})
		}

		tokenStr := bearerToken(c)
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(SessionCookie)
		}

		if tokenStr == "" {
			reject()
			return
		}

		userID, err := security.VerifySessionToken(tokenStr)
		if err != nil {
			zap.L().Debug("Session token rejected", zap.Error(err), zap.String("requestID", requestID))
			reject()
			return
		}

		user, err := s.GetUser(c.Request.Context(), userID)
		if err != nil {
			zap.L().Debug("Token subject no longer resolves", zap.Error(err), zap.String("requestID", requestID))
			reject()
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
