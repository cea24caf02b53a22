package controllers

import (
	"net/http"

	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":          user.ID,
			"employee_id": user.EmployeeID,
			"full_name":   user.FullName,
			"role":        user.Role,
		},
	})
}

func Register(c *gin.Context) {
	var input services.RegisterEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterEmployee(input)
	if err != nil {
		if user != nil {
			// created, but credentials mail failed
			c.JSON(http.StatusCreated, gin.H{"id": user.ID, "employee_id": user.EmployeeID, "warning": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "employee_id": user.EmployeeID, "message": "registration successful"})
}
