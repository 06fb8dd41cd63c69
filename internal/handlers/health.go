package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/starmap-dev/starmap/db"
)

func Home(c *gin.Context) {
	c.String(http.StatusOK, "")
}

func HealthCheck(c *gin.Context) {
	status, message, code := "ok", "Starmap is running", http.StatusOK

	if err := pingDatabase(c); err != nil {
		status, message, code = "degraded", "Database unreachable", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"message":   message,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func pingDatabase(c *gin.Context) error {
	sqlDB, err := db.DB.DB()

	if err != nil {
		return err
	}

	return sqlDB.PingContext(c.Request.Context())
}
