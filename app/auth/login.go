package auth

import (
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/pkg/middleware"
	"therapyhq/practice-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email and password fields can't be empty",
			"requestID": requestID,
		})
		return
	}

	user, err := d.Store.GetUserByEmail(c.Request.Context(), data.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Incorrect email or password",
			"requestID": requestID,
		})
		return
	}

	ok, err := d.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		zap.L().Error("Stored password hash is unusable", zap.Error(err), zap.String("requestID", requestID))
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Incorrect email or password",
			"requestID": requestID,
		})
		return
	}

	// Deliberately distinct from the bad-credential message, the frontend
	// offers a resend when it sees this one
	if !user.Verified {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Email not verified. Please check your email and verify your account.",
			"requestID": requestID,
		})
		return
	}

	token, err := security.IssueSessionToken(user.ID, security.LoginSessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Cookie max-age mirrors the token TTL
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(security.LoginSessionTTL.Seconds()), "/", "", viper.GetBool("host.ssl.enabled"), true)

	c.JSON(http.StatusOK, ackResponse("Login successful", user))
}
