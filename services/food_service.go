package services

import (
	"strings"

	"github.com/Nikhil8847/calify/config"
	"github.com/Nikhil8847/calify/models"
	"github.com/Nikhil8847/calify/utils"
)

type FoodService struct{}

func NewFoodService() *FoodService {
	return &FoodService{}
}

// List returns the food catalog ordered by name, optionally filtered by a
// case-insensitive name substring.
func (s *FoodService) List(search string) ([]models.FoodItem, error) {
	q := config.DB.Order("name")
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var foods []models.FoodItem
	err := q.Find(&foods).Error
	return foods, err
}

// Seed populates the catalog from the sample food list. Idempotent: existing
// names are left untouched. Returns how many rows were created.
func (s *FoodService) Seed() (int, error) {
	created := 0
	for _, item := range utils.SeedFoods() {
		var existing models.FoodItem
		res := config.DB.Where("name = ?", item.Name).
			Attrs(item).
			FirstOrCreate(&existing)
		if res.Error != nil {
			return created, res.Error
		}
		if res.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}
