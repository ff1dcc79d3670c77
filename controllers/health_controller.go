package controllers

import (
	"net/http"

	"github.com/DragianXOG/diet-app/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	dbOK := false
	if config.DB != nil {
		if sqlDB, err := config.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbOK = true
		}
	}
	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"ok": dbOK, "db": dbOK})
}
