package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	Svc *services.AttendanceService
}

func NewLocationController(svc *services.AttendanceService) *LocationController {
	return &LocationController{Svc: svc}
}

type pingInput struct {
	Latitude  float64  `json:"latitude" binding:"required"`
	Longitude float64  `json:"longitude" binding:"required"`
	Accuracy  *float64 `json:"accuracy"`
}

func (h *LocationController) Ping(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input pingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ping, err := h.Svc.RecordPing(c.Request.Context(), userID, input.Latitude, input.Longitude, input.Accuracy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ping)
}

func (h *LocationController) Latest(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ping, err := h.Svc.LatestPing(c.Request.Context(), uint(id64))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ping == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location recorded"})
		return
	}

	c.JSON(http.StatusOK, ping)
}
