package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddGroceryItem(c *gin.Context) {
	var body struct {
		Name     string  `json:"name" binding:"required"`
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.AddGrocery(userScope(c), body.Name, body.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func ListGroceryItems(c *gin.Context) {
	onlyOpen := c.Query("open") == "true"
	items, err := services.ListGroceries(userScope(c), onlyOpen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func ToggleGroceryItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := services.ToggleGroceryPurchased(userScope(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func SyncGroceries(c *gin.Context) {
	var body struct {
		Start         string `json:"start"`
		End           string `json:"end"`
		Days          int    `json:"days"`
		Persist       *bool  `json:"persist"`
		ClearExisting *bool  `json:"clear_existing"`
		SeedIfEmpty   *bool  `json:"seed_if_empty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if body.Start != "" {
		t, err := time.Parse("2006-01-02", body.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
			return
		}
		start = t
	}
	end := start.AddDate(0, 0, 6)
	if body.End != "" {
		t, err := time.Parse("2006-01-02", body.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
			return
		}
		end = t
	} else if body.Days > 0 {
		end = start.AddDate(0, 0, body.Days-1)
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end before start"})
		return
	}

	req := services.GrocerySyncRequest{
		Start:         start,
		End:           end,
		Persist:       body.Persist == nil || *body.Persist,
		ClearExisting: body.ClearExisting == nil || *body.ClearExisting,
		SeedIfEmpty:   body.SeedIfEmpty == nil || *body.SeedIfEmpty,
	}
	res, err := services.SyncGroceriesFromMeals(userScope(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func PreviewGroceryPrices(c *gin.Context) {
	res, err := services.PricePreview(userScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func AssignGroceryPrices(c *gin.Context) {
	res, err := services.PriceAssign(userScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
