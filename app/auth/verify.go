package auth

import (
	"context"
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Verify(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No verification token provided",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	// A consumed token was cleared on the user record, so re-verifying
	// lands here as well
	user, err := d.Store.GetUserByVerificationToken(ctx, token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid or expired verification token",
			"requestID": requestID,
		})
		return
	}

	if _, err := d.Store.UpdateUserVerification(ctx, user.ID, true, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark user verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Welcome mail is best effort and must not hold up the response
	go func(email, tenantID string) {
		tenant, err := d.Store.GetTenant(context.Background(), tenantID)
		if err != nil {
			zap.L().Warn("No tenant for welcome mail", zap.Error(err))
			return
		}

		if ok := d.Mailer.SendWelcome(email, tenant.Name); !ok {
			zap.L().Warn("Failed to send welcome email", zap.String("to", email))
		}
	}(user.Email, user.TenantID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully",
	})
}
