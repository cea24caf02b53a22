package controllers

import (
	"net/http"

	"github.com/shivas758/yamkar4.1-sub001/utils"

	"github.com/gin-gonic/gin"
)

// InitStorage is the one-time bucket bootstrap: create the uploads
// bucket and attach its access policy. Admin-only route.
func InitStorage(c *gin.Context) {
	if err := utils.EnsureBucket(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "storage initialized"})
}
