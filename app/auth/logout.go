package auth

import (
	"net/http"

	"therapyhq/practice-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Logout clears the session cookie. Tokens aren't tracked server-side, so
// an already-issued token stays valid until its natural expiry.
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", viper.GetBool("host.ssl.enabled"), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
