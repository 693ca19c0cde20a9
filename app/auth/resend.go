package auth

import (
	"errors"
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resendBody struct {
	Email string `json:"email"`
}

func ResendVerification(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data resendBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	user, err := d.Store.GetUserByEmail(ctx, data.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "User not found",
			"requestID": requestID,
		})
		return
	}

	if user.Verified {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email is already verified",
			"requestID": requestID,
		})
		return
	}

	// The previous token is overwritten, which invalidates it
	var token string

	for attempt := 0; ; attempt++ {
		token, err = security.GenerateVerificationToken()
		if err != nil {
			break
		}

		_, err = d.Store.UpdateUserVerification(ctx, user.ID, false, &token)
		if err == nil || !errors.Is(err, store.ErrConflict) || attempt >= tokenRetries {
			break
		}
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to update verification token",
			"requestID": requestID,
		})

		zap.L().Error("Failed to rotate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	tenantName := "Our Service"
	if tenant, err := d.Store.GetTenant(ctx, user.TenantID); err == nil {
		tenantName = tenant.Name
	}

	// The new token is already persisted at this point. If the send fails
	// the user holds a valid token they never received and has to ask for
	// another resend, which is accepted behavior.
	if ok := d.Mailer.SendVerification(user.Email, token, tenantName); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to send verification email",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification email sent successfully",
		"email":   user.Email,
	})
}
