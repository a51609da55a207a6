package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/Nikhil8847/calify/models"
	"github.com/Nikhil8847/calify/utils"
)

// KeywordExtractor is the last-resort extraction path: case-insensitive
// keyword scanning against the static nutrition table. No network, always
// succeeds.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

var numberWords = map[string]float64{
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

func (e *KeywordExtractor) Extract(_ context.Context, transcript string) (*ExtractedMeal, error) {
	lower := strings.ToLower(transcript)

	// Longest names first so "chicken sandwich" wins over "chicken"; matched
	// spans are blanked out to avoid double counting.
	var items []ExtractedItem
	working := lower
	for _, food := range utils.FoodsByNameLength() {
		idx := strings.Index(working, food.Name)
		if idx < 0 {
			continue
		}

		qty := precedingQuantity(working[:idx])
		items = append(items, ExtractedItem{
			Name:              food.Name,
			Quantity:          qty,
			Unit:              food.Serving,
			EstimatedCalories: food.Calories * qty,
			Macros: Macros{
				ProteinG: food.Protein * qty,
				CarbsG:   food.Carbs * qty,
				FatG:     food.Fat * qty,
			},
		})
		working = working[:idx] + strings.Repeat(" ", len(food.Name)) + working[idx+len(food.Name):]
	}

	if len(items) == 0 {
		items = []ExtractedItem{{
			Name:              "unknown food",
			Quantity:          1,
			Unit:              "serving",
			EstimatedCalories: 150,
			Macros:            Macros{ProteinG: 5, CarbsG: 20, FatG: 5},
		}}
	}

	var total float64
	for _, it := range items {
		total += it.EstimatedCalories
	}

	return &ExtractedMeal{
		Meal:          classifyMeal(lower),
		Items:         items,
		TotalCalories: total,
		Confidence:    keywordConfidence,
	}, nil
}

// unitFiller are words allowed between a quantity and its food keyword, so
// that "two slices of pizza" still reads as quantity 2 for pizza.
var unitFiller = map[string]bool{
	"of": true, "a": true, "an": true,
	"slice": true, "slices": true,
	"cup": true, "cups": true,
	"piece": true, "pieces": true,
	"bowl": true, "bowls": true,
	"glass": true, "glasses": true,
	"serving": true, "servings": true,
}

// precedingQuantity reads the words just before a matched keyword as a
// quantity when one is a digit or a small English number word, skipping unit
// filler in between. Defaults to 1.
func precedingQuantity(prefix string) float64 {
	fields := strings.Fields(prefix)
	for i := len(fields) - 1; i >= 0; i-- {
		word := strings.Trim(fields[i], ".,!?")
		if n, err := strconv.ParseFloat(word, 64); err == nil && n > 0 {
			return n
		}
		if n, ok := numberWords[word]; ok {
			return n
		}
		if !unitFiller[word] {
			break
		}
	}
	return 1
}

func classifyMeal(lower string) string {
	switch {
	case containsAny(lower, "breakfast", "morning"):
		return models.MealBreakfast
	case containsAny(lower, "lunch", "noon"):
		return models.MealLunch
	case containsAny(lower, "dinner", "evening"):
		return models.MealDinner
	default:
		return models.MealSnack
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
