package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutLog struct {
	gorm.Model
	UserID                  uint   `gorm:"index;not null"`
	WorkoutType             string `gorm:"not null"`
	Sets                    *int
	Reps                    *int
	WeightLbs               *float64
	RestTimeSeconds         *int
	TotalWorkoutTimeMinutes *int
	Notes                   string    `gorm:"type:text"`
	WorkoutDate             time.Time `gorm:"index;not null"`
}
