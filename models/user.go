package models

import "time"

// User rows are hard-deleted so the cascades on meals and food images fire.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Meals      []Meal      `gorm:"constraint:OnDelete:CASCADE;"`
	FoodImages []FoodImage `gorm:"constraint:OnDelete:CASCADE;"`
}
