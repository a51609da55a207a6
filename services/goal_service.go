// services/goal_service.go
package services

import (
	"errors"

	"github.com/Nikhil8847/calify/config"
	"github.com/Nikhil8847/calify/models"

	"gorm.io/gorm"
)

// GetOrCreateGoals returns the user's daily goals, creating the default row
// on first read. The lazy default is part of the gateway contract: every
// scope always has exactly one current goal.
func GetOrCreateGoals(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		goal = models.DefaultDailyGoal(userID)
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
	}
	return &goal, nil
}

// UpsertGoals replaces the user's targets, creating the row if needed.
func UpsertGoals(userID uint, calories, protein, carbs, fat float64) (*models.DailyGoal, error) {
	goal, err := GetOrCreateGoals(userID)
	if err != nil {
		return nil, err
	}

	goal.TargetCalories = calories
	goal.TargetProtein = protein
	goal.TargetCarbs = carbs
	goal.TargetFat = fat

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}
