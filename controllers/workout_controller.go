package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GenerateWorkouts(c *gin.Context) {
	req := services.WorkoutGenerateRequest{Days: 7, Persist: true}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWorkoutService(services.DefaultGenerator())
	doc, err := svc.Generate(c.Request.Context(), userScope(c), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDays) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func ListWorkouts(c *gin.Context) {
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

	svc := services.NewWorkoutService(services.DefaultGenerator())
	sessions, err := svc.List(userScope(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

func UpdateWorkoutExercise(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exercise id"})
		return
	}

	var patch services.ExerciseUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWorkoutService(services.DefaultGenerator())
	ex, err := svc.UpdateExercise(userScope(c), uint(id), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ex)
}
