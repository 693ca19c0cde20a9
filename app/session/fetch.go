package session

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

func SessionFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	session, err := d.Store.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Session not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, session)
}
