package insight

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

func InsightFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	insight, err := d.Store.GetInsight(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Insight not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, insight)
}
