package controllers

import (
	"errors"
	"net/http"

	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
)

func GeneratePlan(c *gin.Context) {
	req := services.PlanGenerateRequest{Days: 7, Persist: true, IncludeRecipes: true}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPlanService(services.DefaultGenerator())
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

func ListPlans(c *gin.Context) {
	svc := services.NewPlanService(services.DefaultGenerator())
	c.JSON(http.StatusOK, gin.H{"plans": svc.List(c.GetUint("userID"))})
}

func GetPlan(c *gin.Context) {
	svc := services.NewPlanService(services.DefaultGenerator())
	doc, err := svc.Get(c.GetUint("userID"), c.Param("start"))
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}
