// Package auth implements the register/login/verify/resend/logout flows
// and the current-identity endpoint.
package auth

import (
	"therapyhq/practice-api/model"

	"github.com/gin-gonic/gin"
)

// Every auth flow acknowledges with the same shape. The password hash and
// the raw verification token never leave the server through here.
func ackResponse(message string, u model.User) gin.H {
	return gin.H{
		"message":   message,
		"user_id":   u.ID,
		"email":     u.Email,
		"role":      u.Role,
		"tenant_id": u.TenantID,
	}
}
