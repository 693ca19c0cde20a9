package media

import (
	"net/http"
	"strconv"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func MediaFetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No session_id provided",
			"requestID": requestID,
		})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	media, err := d.Store.ListMedia(c.Request.Context(), sessionID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list media", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, media)
}
