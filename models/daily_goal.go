package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds a user's daily nutrient-intake targets. One row per user,
// lazily created with defaults on first read.
type DailyGoal struct {
    gorm.Model
    UserID         uint    `gorm:"uniqueIndex;not null" json:"-"`
    TargetCalories float64 `json:"target_calories"` // e.g. 2000 kcal
    TargetProtein  float64 `json:"target_protein"`  // e.g. 150 g
    TargetCarbs    float64 `json:"target_carbs"`    // e.g. 250 g
    TargetFat      float64 `json:"target_fat"`      // e.g. 65 g
}

// DefaultDailyGoal returns the targets used when a user has never set goals.
func DefaultDailyGoal(userID uint) DailyGoal {
    return DailyGoal{
        UserID:         userID,
        TargetCalories: 2000,
        TargetProtein:  150,
        TargetCarbs:    250,
        TargetFat:      65,
    }
}
