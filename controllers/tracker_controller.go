package controllers

import (
	"net/http"
	"time"

	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
)

func AddWeight(c *gin.Context) {
	var body struct {
		When     time.Time `json:"when"`
		WeightLb int       `json:"weight_lb" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.AddWeightLog(userScope(c), body.When, body.WeightLb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func ListWeights(c *gin.Context) {
	logs, err := services.ListWeightLogs(userScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func AddGlucose(c *gin.Context) {
	var body struct {
		When time.Time `json:"when"`
		MgDL int       `json:"mg_dL" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.AddGlucoseLog(userScope(c), body.When, body.MgDL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func ListGlucose(c *gin.Context) {
	logs, err := services.ListGlucoseLogs(userScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func CheckMeal(c *gin.Context) {
	var body struct {
		Date     string `json:"date" binding:"required"`
		Title    string `json:"title" binding:"required"`
		Complete *bool  `json:"complete"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	complete := body.Complete == nil || *body.Complete

	check, err := services.UpsertMealCheck(userScope(c), date, body.Title, complete)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

func ListMealChecks(c *gin.Context) {
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

	checks, err := services.ListMealChecks(userScope(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checks": checks})
}

func ChecklistSummary(c *gin.Context) {
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

	now := time.Now().UTC().Truncate(24 * time.Hour)
	s, e := now, now.AddDate(0, 0, 6)
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}

	sum, err := services.ChecklistOverview(userScope(c), s, e)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func ListAlerts(c *gin.Context) {
	alerts, err := services.ListAlerts(c.GetUint("userID"), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
