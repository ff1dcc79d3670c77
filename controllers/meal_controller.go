package controllers

import (
	"net/http"

	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
)

func ListMeals(c *gin.Context) {
	start, ok := queryDate(c, "start")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
		return
	}
	end, ok := queryDate(c, "end")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
		return
	}

	meals, err := services.ListMeals(userScope(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}

func CreateMeals(c *gin.Context) {
	var body struct {
		Meals []services.MealInput `json:"meals" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.CreateMeals(userScope(c), body.Meals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": created})
}
