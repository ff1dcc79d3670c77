package controllers

import (
	"time"

	"github.com/DragianXOG/diet-app/config"

	"github.com/gin-gonic/gin"
)

func userScope(c *gin.Context) *config.UserScope {
	return config.NewUserScope(config.DB, c.GetUint("userID"))
}

// queryDate parses a YYYY-MM-DD query param; nil when absent.
func queryDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
