package services

import (
	"fmt"
	"testing"

	"github.com/Nikhil8847/calify/config"
	"github.com/Nikhil8847/calify/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory SQLite database for the
// duration of the test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

func createTestUser(t *testing.T) *models.User {
	t.Helper()

	user := &models.User{Email: "test@example.com", Password: "x", FullName: "Test User"}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func createTestFood(t *testing.T, name string, cals, protein, carbs, fat float64) *models.FoodItem {
	t.Helper()

	food := &models.FoodItem{
		Name:            name,
		CaloriesPer100g: cals,
		ProteinPer100g:  protein,
		CarbsPer100g:    carbs,
		FatPer100g:      fat,
	}
	require.NoError(t, config.DB.Create(food).Error)
	return food
}
