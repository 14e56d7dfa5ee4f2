package models

import "gorm.io/gorm"

// Profile holds the body metrics and preferences collected during
// onboarding. Height and weight accept either unit pair; the stored
// variant is whichever the client sent.
type Profile struct {
	gorm.Model
	UserID              uint `gorm:"uniqueIndex;not null"`
	Age                 int
	HeightCm            *float64
	HeightFt            *float64
	WeightKg            *float64
	WeightLbs           *float64
	ActivityLevel       string `gorm:"size:32"`
	DietPreference      string `gorm:"size:32"`
	ProfilePhotoURL     string
	OnboardingCompleted bool
}
