package services

import (
	"testing"

	"github.com/Nikhil8847/calify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryService_Create_DerivesTotalsFromFood(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	food := createTestFood(t, "Banana", 89, 1.1, 23, 0.3)
	svc := NewEntryService()

	tests := []struct {
		name     string
		quantity float64
	}{
		{"one_hundred_grams", 100},
		{"partial_serving", 118},
		{"double_serving", 200},
		{"zero_quantity", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := svc.Create(user.ID, &EntryRequest{
				FoodItemID:    &food.ID,
				QuantityGrams: tt.quantity,
				MealType:      models.MealBreakfast,
				// Caller-supplied totals must be ignored for referenced foods.
				Calories: 9999,
				Protein:  9999,
			})
			require.NoError(t, err)

			m := tt.quantity / 100
			assert.InDelta(t, 89*m, entry.Calories, 1e-9)
			assert.InDelta(t, 1.1*m, entry.Protein, 1e-9)
			assert.InDelta(t, 23*m, entry.Carbs, 1e-9)
			assert.InDelta(t, 0.3*m, entry.Fat, 1e-9)
		})
	}
}

func TestEntryService_Update_RederivesTotals(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	banana := createTestFood(t, "Banana", 89, 1.1, 23, 0.3)
	rice := createTestFood(t, "Brown Rice", 111, 2.6, 23, 0.9)
	svc := NewEntryService()

	entry, err := svc.Create(user.ID, &EntryRequest{
		FoodItemID:    &banana.ID,
		QuantityGrams: 100,
		MealType:      models.MealLunch,
	})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, entry.ID, &EntryRequest{
		FoodItemID:    &rice.ID,
		QuantityGrams: 150,
		MealType:      models.MealDinner,
	})
	require.NoError(t, err)

	assert.InDelta(t, 111*1.5, updated.Calories, 1e-9)
	assert.InDelta(t, 2.6*1.5, updated.Protein, 1e-9)
	assert.Equal(t, models.MealDinner, updated.MealType)
}

func TestEntryService_Create_AdHocDescription(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	svc := NewEntryService()

	entry, err := svc.Create(user.ID, &EntryRequest{
		Description:   "chicken sandwich",
		QuantityGrams: 1,
		MealType:      models.MealLunch,
		Calories:      350,
		Protein:       28,
		Carbs:         35,
		Fat:           12,
	})
	require.NoError(t, err)

	// No food reference, so the extractor-supplied values are kept as-is.
	assert.Nil(t, entry.FoodItemID)
	assert.InDelta(t, 350, entry.Calories, 1e-9)
	assert.InDelta(t, 28, entry.Protein, 1e-9)
}

func TestEntryService_Create_Invalid(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	svc := NewEntryService()

	t.Run("no_food_and_no_description", func(t *testing.T) {
		_, err := svc.Create(user.ID, &EntryRequest{QuantityGrams: 100})
		assert.ErrorIs(t, err, ErrEntryInvalid)
	})

	t.Run("negative_quantity", func(t *testing.T) {
		_, err := svc.Create(user.ID, &EntryRequest{Description: "x", QuantityGrams: -1})
		assert.ErrorIs(t, err, ErrEntryInvalid)
	})

	t.Run("unknown_meal_type", func(t *testing.T) {
		_, err := svc.Create(user.ID, &EntryRequest{Description: "x", QuantityGrams: 1, MealType: "brunch"})
		assert.ErrorIs(t, err, ErrEntryInvalid)
	})

	t.Run("missing_food_item", func(t *testing.T) {
		id := uint(12345)
		_, err := svc.Create(user.ID, &EntryRequest{FoodItemID: &id, QuantityGrams: 100})
		assert.ErrorIs(t, err, ErrEntryInvalid)
	})
}

func TestEntryService_ListScopedToUser(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	svc := NewEntryService()

	_, err := svc.Create(user.ID, &EntryRequest{Description: "salad", QuantityGrams: 1, Calories: 120})
	require.NoError(t, err)
	_, err = svc.Create(user.ID+1, &EntryRequest{Description: "pasta", QuantityGrams: 1, Calories: 200})
	require.NoError(t, err)

	entries, err := svc.List(user.ID, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "salad", entries[0].Description)
}
