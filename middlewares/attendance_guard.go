package middlewares

import (
	"net/http"
	"strconv"

	"github.com/shivas758/yamkar4.1-sub001/config"
	"github.com/shivas758/yamkar4.1-sub001/models"

	"github.com/gin-gonic/gin"
)

// CanViewAttendance allows a report request through when the viewer is
// the subject user, an admin, or the subject's direct manager. The
// report service itself does not re-check this; routes must keep this
// guard in front of it.
func CanViewAttendance() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := c.GetUint("userID")
		role := c.GetString("role")

		target, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id query param required"})
			return
		}

		if role == models.RoleAdmin || uint(target) == viewerID {
			c.Next()
			return
		}

		if role == models.RoleManager {
			var n int64
			if err := config.DB.Model(&models.User{}).
				Where("id = ? AND manager_id = ?", uint(target), viewerID).
				Count(&n).Error; err == nil && n > 0 {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed to view this user's attendance"})
	}
}
