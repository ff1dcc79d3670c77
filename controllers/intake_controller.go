package controllers

import (
	"net/http"

	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
)

func GetIntake(c *gin.Context) {
	intake, err := services.GetIntake(userScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if intake == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no intake on file"})
		return
	}
	c.JSON(http.StatusOK, intake)
}

func UpsertIntake(c *gin.Context) {
	var input services.IntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake, result, err := services.UpsertIntake(userScope(c), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"intake": intake, "plan": result})
}

func RationalizePlan(c *gin.Context) {
	result, err := services.RationalizeForUser(userScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
