package models

import (
    "gorm.io/gorm"
)

// Meal type tags. "unknown" only appears on extraction results, never on
// persisted entries.
const (
    MealBreakfast = "breakfast"
    MealLunch     = "lunch"
    MealDinner    = "dinner"
    MealSnack     = "snack"
    MealUnknown   = "unknown"
)

// ValidMealType reports whether t is a persistable meal type.
func ValidMealType(t string) bool {
    switch t {
    case MealBreakfast, MealLunch, MealDinner, MealSnack:
        return true
    }
    return false
}

// CalorieEntry is one logged consumption event. Entries either reference a
// FoodItem (nutrition snapshot derived from its per-100g values at write time)
// or carry an ad-hoc Description with extractor-estimated values, as produced
// by the voice pipeline.
type CalorieEntry struct {
    gorm.Model
    UserID      uint   `gorm:"index;not null" json:"user_id"`
    FoodItemID  *uint  `gorm:"index" json:"food_item"`
    FoodItem    *FoodItem `json:"-"`
    Description string `json:"description,omitempty"`

    QuantityGrams float64 `json:"quantity_grams"`
    MealType      string  `gorm:"type:varchar(20);default:'snack'" json:"meal_type"`

    // Snapshot totals for the logged quantity. Derived, never caller-supplied,
    // whenever FoodItemID is set.
    Calories float64 `json:"calories"`
    Protein  float64 `json:"protein"`
    Carbs    float64 `json:"carbs"`
    Fat      float64 `json:"fat"`
}
