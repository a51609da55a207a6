package models

import "gorm.io/gorm"

// FoodItem is a catalog entry with nutrition normalized to 100 grams.
// Rows come from seed data or admin edits; lookups treat Name as the key.
type FoodItem struct {
    gorm.Model
    Name            string  `gorm:"uniqueIndex;not null" json:"name"`
    CaloriesPer100g float64 `json:"calories_per_100g"`
    ProteinPer100g  float64 `json:"protein_per_100g"`
    CarbsPer100g    float64 `json:"carbs_per_100g"`
    FatPer100g      float64 `json:"fat_per_100g"`
}
