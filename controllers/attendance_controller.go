// controllers/attendance_controller.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	Svc     *services.AttendanceService
	Reports *services.ReportService
}

func NewAttendanceController(svc *services.AttendanceService, reports *services.ReportService) *AttendanceController {
	return &AttendanceController{Svc: svc, Reports: reports}
}

type checkInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *AttendanceController) CheckIn(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input checkInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.CheckIn(c.Request.Context(), userID, input.Latitude, input.Longitude)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCheckedIn) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *AttendanceController) CheckOut(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input checkInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.CheckOut(c.Request.Context(), userID, input.Latitude, input.Longitude)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetReport answers GET /attendance/report?user_id=&from=&to=.
// Visibility is enforced by middlewares.CanViewAttendance on the route.
func (h *AttendanceController) GetReport(c *gin.Context) {
	userID64, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query param required"})
		return
	}

	now := time.Now()
	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	reports, err := h.Reports.DailyReports(c.Request.Context(), uint(userID64), from, to)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var dse *services.DataSourceError
		if errors.As(err, &dse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": dse.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID64, "reports": reports})
}
