package controllers

import (
	"net/http"
	"time"

	"github.com/Nikhil8847/calify/services"

	"github.com/gin-gonic/gin"
)

// GET /api/summary?date=YYYY-MM-DD (defaults to today)
func DailySummary(c *gin.Context) {
	date := time.Now()
	if ds := c.Query("date"); ds != "" {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = d
	}

	summarySvc := services.NewSummaryService(services.NewEntryService())
	summary, err := summarySvc.DailySummary(currentUserID(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
