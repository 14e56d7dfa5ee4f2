package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionLog is one logged meal entry. Entries are immutable once
// created; the only mutation is an explicit delete by the owner.
// Numeric fields are nullable because the logging form treats them as
// optional; aggregation counts absent values as zero.
type NutritionLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	MealType string `gorm:"size:16;not null"` // breakfast|lunch|dinner|snacks
	FoodName string `gorm:"not null"`
	Quantity string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
	MealDate time.Time `gorm:"index;not null"` // truncated to local midnight
}
