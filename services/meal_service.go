// services/meal_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/5hjiwoo/foodrecommend/models"
)

const DateLayout = "2006-01-02"

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealItemRequest struct {
	FoodName string
	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64
}

type MealItemResponse struct {
	ID       uint    `json:"id"`
	MealID   uint    `json:"meal"`
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

type MealResponse struct {
	ID       uint               `json:"id"`
	MealType string             `json:"meal_type"`
	Date     string             `json:"date"`
	UserID   uint               `json:"user"`
	Items    []MealItemResponse `json:"items"`
}

func NewMealResponse(m models.Meal) MealResponse {
	out := MealResponse{
		ID:       m.ID,
		MealType: m.MealType,
		Date:     time.Time(m.Date).Format(DateLayout),
		UserID:   m.UserID,
		Items:    make([]MealItemResponse, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		out.Items = append(out.Items, MealItemResponse{
			ID:       it.ID,
			MealID:   it.MealID,
			FoodName: it.FoodName,
			Calories: it.Calories,
			Carbs:    it.Carbs,
			Protein:  it.Protein,
			Fat:      it.Fat,
		})
	}
	return out
}

// AddMeal stores the meal together with its items. gorm writes the
// association in the same transaction as the parent row.
func (s *MealService) AddMeal(
	ctx context.Context,
	userID uint,
	mealType string,
	date time.Time,
	items []MealItemRequest,
) (*models.Meal, error) {
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}

	meal := &models.Meal{
		MealType: mealType,
		Date:     datatypes.Date(date),
		UserID:   userID,
		Items:    make([]models.MealItem, 0, len(items)),
	}
	for _, it := range items {
		meal.Items = append(meal.Items, models.MealItem{
			FoodName: it.FoodName,
			Calories: it.Calories,
			Carbs:    it.Carbs,
			Protein:  it.Protein,
			Fat:      it.Fat,
		})
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// ListMealsByEmail returns every meal of the user owning email, oldest first,
// with items preloaded.
func (s *MealService) ListMealsByEmail(ctx context.Context, email string) ([]models.Meal, error) {
	user, err := findUserByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	return s.ListMeals(ctx, user.ID)
}

func (s *MealService) ListMeals(ctx context.Context, userID uint) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func (s *MealService) GetMeal(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return &meal, nil
}

// DeleteMeal removes the meal and its items.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		if err != nil {
			return fmt.Errorf("find meal: %w", err)
		}

		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return fmt.Errorf("delete meal items: %w", err)
		}
		if err := tx.Delete(&meal).Error; err != nil {
			return fmt.Errorf("delete meal: %w", err)
		}
		return nil
	})
}
