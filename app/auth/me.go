package auth

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

// Me returns the caller's own user record. The auth middleware already
// resolved the token subject, so a miss here means the user vanished
// between the gate and this lookup.
func Me(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	user, err := d.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Could not validate credentials",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
