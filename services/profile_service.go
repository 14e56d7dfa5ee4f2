package services

import (
	"errors"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/models"
	"github.com/promit1201/fitin-v3-20177/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Age                 *int     `json:"age"`
	HeightCm            *float64 `json:"height_cm"`
	HeightFt            *float64 `json:"height_ft"`
	WeightKg            *float64 `json:"weight_kg"`
	WeightLbs           *float64 `json:"weight_lbs"`
	ActivityLevel       string   `json:"activity_level"`
	DietPreference      string   `json:"diet_preference"`
	ProfilePhotoURL     string   `json:"profile_photo_url"`
	OnboardingCompleted *bool    `json:"onboarding_completed"`
}

func GetProfile(userID uint) (*models.Profile, error) {
	var p models.Profile
	if err := config.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// accounts predating the register-time profile row
			p = models.Profile{UserID: userID}
			if err := config.DB.Create(&p).Error; err != nil {
				return nil, err
			}
			return &p, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies only the fields present in the input, the same
// partial-update behavior the onboarding form relies on.
func UpdateProfile(userID uint, in ProfileInput) (*models.Profile, error) {
	p, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.HeightCm != nil {
		p.HeightCm = in.HeightCm
	}
	if in.HeightFt != nil {
		p.HeightFt = in.HeightFt
	}
	if in.WeightKg != nil {
		p.WeightKg = in.WeightKg
	}
	if in.WeightLbs != nil {
		p.WeightLbs = in.WeightLbs
	}
	if in.ActivityLevel != "" {
		p.ActivityLevel = in.ActivityLevel
	}
	if in.DietPreference != "" {
		p.DietPreference = in.DietPreference
	}
	if in.ProfilePhotoURL != "" {
		p.ProfilePhotoURL = in.ProfilePhotoURL
	}
	if in.OnboardingCompleted != nil {
		p.OnboardingCompleted = *in.OnboardingCompleted
	}

	if err := config.DB.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// HasBodyMetrics reports whether height and weight are both on file, in
// either unit variant. Premium features stay locked until they are.
func HasBodyMetrics(p *models.Profile) bool {
	if p == nil {
		return false
	}
	height := p.HeightCm != nil || p.HeightFt != nil
	weight := p.WeightKg != nil || p.WeightLbs != nil
	return height && weight
}

// NormalizedMetrics returns height in cm and weight in kg, converting
// from the imperial variant when that is what the profile stores.
func NormalizedMetrics(p *models.Profile) (heightCm, weightKg float64, ok bool) {
	if !HasBodyMetrics(p) {
		return 0, 0, false
	}

	switch {
	case p.HeightCm != nil:
		heightCm = *p.HeightCm
	default:
		heightCm = utils.FeetToCm(*p.HeightFt)
	}
	switch {
	case p.WeightKg != nil:
		weightKg = *p.WeightKg
	default:
		weightKg = utils.LbsToKg(*p.WeightLbs)
	}
	return heightCm, weightKg, true
}
