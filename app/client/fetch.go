package client

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

func ClientFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	client, err := d.Store.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Client not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, client)
}
