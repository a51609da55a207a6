// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"github.com/Nikhil8847/calify/services"

	"github.com/gin-gonic/gin"
)

// GET /api/goals
func GetGoals(c *gin.Context) {
	goal, err := services.GetOrCreateGoals(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// PUT /api/goals
func UpdateGoals(c *gin.Context) {
	var req struct {
		TargetCalories float64 `json:"target_calories" binding:"required,gt=0"`
		TargetProtein  float64 `json:"target_protein" binding:"required,gt=0"`
		TargetCarbs    float64 `json:"target_carbs" binding:"required,gt=0"`
		TargetFat      float64 `json:"target_fat" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoals(
		currentUserID(c),
		req.TargetCalories,
		req.TargetProtein,
		req.TargetCarbs,
		req.TargetFat,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
