// controllers/dev_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Nikhil8847/calify/services"
	"github.com/gin-gonic/gin"
)

// GET /
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Calify API is running",
		"timestamp": time.Now().Format("2006-01-02"),
	})
}

// POST /dev/seed-foods — idempotent sample-catalog load for dev setups.
func SeedFoods(c *gin.Context) {
	created, err := services.NewFoodService().Seed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
