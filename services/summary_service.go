package services

import (
	"time"

	"github.com/Nikhil8847/calify/models"
)

// NutrientTotals is a summed nutrition tuple.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (t *NutrientTotals) add(e *models.CalorieEntry) {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Carbs += e.Carbs
	t.Fat += e.Fat
}

// MealSummary is one meal-type bucket of the daily breakdown.
type MealSummary struct {
	Totals  NutrientTotals         `json:"totals"`
	Entries []models.CalorieEntry  `json:"entries"`
}

// DailySummary aggregates one user's day against their goals.
type DailySummary struct {
	Date          string                 `json:"date"`
	Totals        NutrientTotals         `json:"totals"`
	Goals         *models.DailyGoal      `json:"goals"`
	Remaining     NutrientTotals         `json:"remaining"`
	MealBreakdown map[string]MealSummary `json:"meal_breakdown"`
	EntriesCount  int                    `json:"entries_count"`
}

type SummaryService struct {
	entries *EntryService
}

func NewSummaryService(es *EntryService) *SummaryService {
	return &SummaryService{entries: es}
}

// DailySummary reads back the user's entries for the given day and sums them,
// overall and grouped by meal type, alongside the (lazily created) goals.
func (s *SummaryService) DailySummary(userID uint, date time.Time) (*DailySummary, error) {
	entries, err := s.entries.List(userID, &date)
	if err != nil {
		return nil, err
	}

	goals, err := GetOrCreateGoals(userID)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]MealSummary, 4)
	for _, mealType := range []string{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack} {
		breakdown[mealType] = MealSummary{Entries: []models.CalorieEntry{}}
	}

	var totals NutrientTotals
	for i := range entries {
		e := &entries[i]
		totals.add(e)

		bucket := breakdown[e.MealType]
		bucket.Totals.add(e)
		bucket.Entries = append(bucket.Entries, *e)
		breakdown[e.MealType] = bucket
	}

	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}

	return &DailySummary{
		Date:   date.Format("2006-01-02"),
		Totals: totals,
		Goals:  goals,
		Remaining: NutrientTotals{
			Calories: clamp(goals.TargetCalories - totals.Calories),
			Protein:  clamp(goals.TargetProtein - totals.Protein),
			Carbs:    clamp(goals.TargetCarbs - totals.Carbs),
			Fat:      clamp(goals.TargetFat - totals.Fat),
		},
		MealBreakdown: breakdown,
		EntriesCount:  len(entries),
	}, nil
}
