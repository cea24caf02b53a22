package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivas758/yamkar4.1-sub001/models"
	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

func CreateFarmer(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.FarmerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	farmer, err := services.CreateFarmer(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, farmer)
}

func UpdateFarmer(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer id"})
		return
	}

	var input services.FarmerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isAdmin := c.GetString("role") == models.RoleAdmin
	farmer, err := services.UpdateFarmer(uint(id64), userID, isAdmin, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, farmer)
}

func ListFarmers(c *gin.Context) {
	var collectorID, villageID uint
	if v := c.Query("collected_by"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collected_by"})
			return
		}
		collectorID = uint(id64)
	}
	if v := c.Query("village_id"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid village_id"})
			return
		}
		villageID = uint(id64)
	}

	farmers, err := services.ListFarmers(collectorID, villageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, farmers)
}

func GetFarmer(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer id"})
		return
	}

	farmer, err := services.GetFarmer(uint(id64))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, farmer)
}
