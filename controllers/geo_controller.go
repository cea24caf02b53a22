package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

func ListStates(c *gin.Context) {
	states, err := services.ListStates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, states)
}

func ListDistricts(c *gin.Context) {
	id, ok := queryID(c, "state_id")
	if !ok {
		return
	}
	districts, err := services.ListDistricts(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, districts)
}

func ListMandals(c *gin.Context) {
	id, ok := queryID(c, "district_id")
	if !ok {
		return
	}
	mandals, err := services.ListMandals(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mandals)
}

func ListVillages(c *gin.Context) {
	id, ok := queryID(c, "mandal_id")
	if !ok {
		return
	}
	villages, err := services.ListVillages(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, villages)
}

func queryID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query param required"})
		return 0, false
	}
	return uint(id64), true
}
