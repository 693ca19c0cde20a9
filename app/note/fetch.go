package note

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

func NoteFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	note, err := d.Store.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Note not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, note)
}
