package utils

import (
	"sort"
	"strings"

	"github.com/Nikhil8847/calify/models"
)

// FoodNutrition is one row of the static lookup table: per-serving nutrition
// for a common food keyword. Used as the last-resort source when no
// model-based extraction is available.
type FoodNutrition struct {
	Name     string
	Calories float64
	Protein  float64 // grams
	Carbs    float64 // grams
	Fat      float64 // grams
	Serving  string
	Category string
}

var foodTable = []FoodNutrition{
	{Name: "apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Serving: "1 medium (182g)", Category: "fruits"},
	{Name: "banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Serving: "1 medium (118g)", Category: "fruits"},
	{Name: "orange", Calories: 62, Protein: 1.2, Carbs: 15.4, Fat: 0.2, Serving: "1 medium (131g)", Category: "fruits"},
	{Name: "grilled chicken breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Serving: "100g", Category: "protein"},
	{Name: "chicken sandwich", Calories: 350, Protein: 28, Carbs: 35, Fat: 12, Serving: "1 sandwich", Category: "meal"},
	{Name: "chicken", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Serving: "100g", Category: "protein"},
	{Name: "salmon", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Serving: "100g", Category: "protein"},
	{Name: "eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Serving: "2 large", Category: "protein"},
	{Name: "rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Serving: "100g cooked", Category: "grains"},
	{Name: "bread", Calories: 75, Protein: 3, Carbs: 13, Fat: 1, Serving: "1 slice", Category: "grains"},
	{Name: "pasta", Calories: 200, Protein: 7, Carbs: 42, Fat: 1.2, Serving: "100g cooked", Category: "grains"},
	{Name: "pizza", Calories: 285, Protein: 12, Carbs: 36, Fat: 10, Serving: "1 slice", Category: "meal"},
	{Name: "oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 2.5, Serving: "1 bowl", Category: "grains"},
	{Name: "milk", Calories: 122, Protein: 8.1, Carbs: 12, Fat: 4.8, Serving: "240ml", Category: "dairy"},
	{Name: "coffee", Calories: 30, Protein: 2, Carbs: 4, Fat: 1, Serving: "1 cup", Category: "drinks"},
	{Name: "yogurt", Calories: 150, Protein: 12, Carbs: 17, Fat: 3.8, Serving: "170g", Category: "dairy"},
	{Name: "cheese", Calories: 113, Protein: 7.1, Carbs: 0.9, Fat: 9.4, Serving: "30g", Category: "dairy"},
	{Name: "salad", Calories: 120, Protein: 3, Carbs: 8, Fat: 9, Serving: "1 bowl", Category: "vegetables"},
	{Name: "broccoli", Calories: 55, Protein: 3.7, Carbs: 11, Fat: 0.6, Serving: "1 cup", Category: "vegetables"},
	{Name: "almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Serving: "28g handful", Category: "nuts"},
}

// LookupFood returns the table entry for a food keyword, trying an exact match
// before substring containment. Returns nil when nothing matches.
func LookupFood(name string) *FoodNutrition {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil
	}
	for i := range foodTable {
		if foodTable[i].Name == q {
			return &foodTable[i]
		}
	}
	for i := range foodTable {
		if strings.Contains(foodTable[i].Name, q) || strings.Contains(q, foodTable[i].Name) {
			return &foodTable[i]
		}
	}
	return nil
}

// FoodsByNameLength returns the table sorted longest-name-first, so that
// multi-word entries ("chicken sandwich") are matched before their
// single-word substrings ("chicken") during transcript scanning.
func FoodsByNameLength() []FoodNutrition {
	out := make([]FoodNutrition, len(foodTable))
	copy(out, foodTable)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Name) > len(out[j].Name)
	})
	return out
}

// SeedFoods is the sample catalog used to populate the food_items table.
// Values are per 100 grams.
func SeedFoods() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2},
		{Name: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3},
		{Name: "Orange", CaloriesPer100g: 47, ProteinPer100g: 0.9, CarbsPer100g: 12, FatPer100g: 0.1},
		{Name: "Broccoli", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4},
		{Name: "Spinach", CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4},
		{Name: "Carrot", CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2},
		{Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
		{Name: "Salmon", CaloriesPer100g: 208, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 12},
		{Name: "Eggs", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11},
		{Name: "Brown Rice", CaloriesPer100g: 111, ProteinPer100g: 2.6, CarbsPer100g: 23, FatPer100g: 0.9},
		{Name: "Oats", CaloriesPer100g: 389, ProteinPer100g: 17, CarbsPer100g: 66, FatPer100g: 6.9},
		{Name: "Quinoa", CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 22, FatPer100g: 1.9},
		{Name: "Greek Yogurt", CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4},
		{Name: "Milk (2%)", CaloriesPer100g: 50, ProteinPer100g: 3.4, CarbsPer100g: 5, FatPer100g: 2},
		{Name: "Cheddar Cheese", CaloriesPer100g: 403, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33},
		{Name: "Almonds", CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50},
		{Name: "Walnuts", CaloriesPer100g: 654, ProteinPer100g: 15, CarbsPer100g: 14, FatPer100g: 65},
		{Name: "Chia Seeds", CaloriesPer100g: 486, ProteinPer100g: 17, CarbsPer100g: 42, FatPer100g: 31},
	}
}
