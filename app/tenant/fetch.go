package tenant

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
)

func TenantFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	tenant, err := d.Store.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Tenant not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, tenant)
}
