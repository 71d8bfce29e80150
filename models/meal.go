package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// ValidMealType reports whether t is one of the supported eating occasions.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// One eating occasion of a user on a calendar day.
type Meal struct {
	ID        uint           `gorm:"primaryKey"`
	MealType  string         `gorm:"size:10;not null"`
	Date      datatypes.Date `gorm:"not null;index"`
	UserID    uint           `gorm:"index;not null"` // FK → users.id
	CreatedAt time.Time

	Items []MealItem `gorm:"constraint:OnDelete:CASCADE;"`
}

// One nutrition entry within a meal
type MealItem struct {
	ID       uint   `gorm:"primaryKey"`
	MealID   uint   `gorm:"index;not null"`
	FoodName string `gorm:"size:100;not null"`
	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64
}
