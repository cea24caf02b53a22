package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

type MeterReadingController struct {
	Svc *services.PhotoService
}

func NewMeterReadingController(svc *services.PhotoService) *MeterReadingController {
	return &MeterReadingController{Svc: svc}
}

type meterReadingInput struct {
	FarmerID    uint    `json:"farmer_id" binding:"required"`
	Reading     float64 `json:"reading" binding:"required"`
	PhotoBase64 string  `json:"photo_base64" binding:"required"`
}

func (h *MeterReadingController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input meterReadingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := h.Svc.SaveMeterReading(c.Request.Context(), userID, input.FarmerID, input.Reading, input.PhotoBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *MeterReadingController) ListByFarmer(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("farmerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer id"})
		return
	}

	rows, err := h.Svc.ListByFarmer(c.Request.Context(), uint(id64))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
