package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nikhil8847/calify/config"
	"github.com/Nikhil8847/calify/models"

	"gorm.io/gorm"
)

type EntryService struct{}

func NewEntryService() *EntryService {
	return &EntryService{}
}

// EntryRequest is the caller-facing shape for creating or updating an entry.
// When FoodItemID is set the nutrient fields are ignored and re-derived; they
// are only honored for ad-hoc (voice-derived) entries.
type EntryRequest struct {
	FoodItemID    *uint   `json:"food_item"`
	Description   string  `json:"description"`
	QuantityGrams float64 `json:"quantity_grams"`
	MealType      string  `json:"meal_type"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
}

var ErrEntryInvalid = errors.New("invalid entry")

// applyRequest fills the entry from the request, recomputing derived totals
// from the referenced food's per-100g values. This runs on every write so
// stored totals can never drift from quantity x food.
func applyRequest(entry *models.CalorieEntry, req *EntryRequest) error {
	if req.QuantityGrams < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrEntryInvalid)
	}
	mealType := req.MealType
	if mealType == "" {
		mealType = models.MealSnack
	}
	if !models.ValidMealType(mealType) {
		return fmt.Errorf("%w: unknown meal type %q", ErrEntryInvalid, req.MealType)
	}

	entry.FoodItemID = req.FoodItemID
	entry.Description = req.Description
	entry.QuantityGrams = req.QuantityGrams
	entry.MealType = mealType

	if req.FoodItemID != nil {
		var food models.FoodItem
		if err := config.DB.First(&food, *req.FoodItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: food item %d not found", ErrEntryInvalid, *req.FoodItemID)
			}
			return err
		}
		multiplier := req.QuantityGrams / 100
		entry.Calories = food.CaloriesPer100g * multiplier
		entry.Protein = food.ProteinPer100g * multiplier
		entry.Carbs = food.CarbsPer100g * multiplier
		entry.Fat = food.FatPer100g * multiplier
		return nil
	}

	if req.Description == "" {
		return fmt.Errorf("%w: either a food item or a description is required", ErrEntryInvalid)
	}
	entry.Calories = req.Calories
	entry.Protein = req.Protein
	entry.Carbs = req.Carbs
	entry.Fat = req.Fat
	return nil
}

func (s *EntryService) Create(userID uint, req *EntryRequest) (*models.CalorieEntry, error) {
	entry := &models.CalorieEntry{UserID: userID}
	if err := applyRequest(entry, req); err != nil {
		return nil, err
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Update(userID, entryID uint, req *EntryRequest) (*models.CalorieEntry, error) {
	var entry models.CalorieEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	if err := applyRequest(&entry, req); err != nil {
		return nil, err
	}
	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) Get(userID, entryID uint) (*models.CalorieEntry, error) {
	var entry models.CalorieEntry
	err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &entry, nil
}

func (s *EntryService) Delete(userID, entryID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.CalorieEntry{}).Error
}

// List returns the user's entries, newest first, optionally limited to the
// calendar day containing date.
func (s *EntryService) List(userID uint, date *time.Time) ([]models.CalorieEntry, error) {
	q := config.DB.Where("user_id = ?", userID)
	if date != nil {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		end := start.Add(24 * time.Hour)
		q = q.Where("created_at >= ? AND created_at < ?", start, end)
	}
	var entries []models.CalorieEntry
	err := q.Order("created_at DESC").Find(&entries).Error
	return entries, err
}
