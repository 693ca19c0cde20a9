package media

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

func MediaFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	media, err := d.Store.GetMedia(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Media not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, media)
}
