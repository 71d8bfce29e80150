package models

import "time"

// FoodImage is an uploaded photo kept as input for enrichment.
// Image holds the storage key, e.g. "food_images/<uuid>.jpg".
type FoodImage struct {
	ID        uint   `gorm:"primaryKey"`
	Image     string `gorm:"size:255;not null"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
}
