package services

import (
	"errors"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/models"

	"gorm.io/gorm"
)

var ErrInvalidPlanType = errors.New("plan type must be free or paid")

// GetPlan never fails on absence: a user without a row is on the free
// tier.
func GetPlan(userID uint) (*models.UserPlan, error) {
	var plan models.UserPlan
	err := config.DB.Where("user_id = ?", userID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserPlan{UserID: userID, PlanType: "free"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpsertPlan sets the user's tier, keeping at most one row per user.
func UpsertPlan(userID uint, planType string) (*models.UserPlan, error) {
	if planType != "free" && planType != "paid" {
		return nil, ErrInvalidPlanType
	}

	var plan models.UserPlan
	err := config.DB.Where("user_id = ?", userID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		plan = models.UserPlan{UserID: userID, PlanType: planType}
		if err := config.DB.Create(&plan).Error; err != nil {
			return nil, err
		}
		return &plan, nil
	}
	if err != nil {
		return nil, err
	}

	plan.PlanType = planType
	if err := config.DB.Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func IsPaid(userID uint) (bool, error) {
	plan, err := GetPlan(userID)
	if err != nil {
		return false, err
	}
	return plan.PlanType == "paid", nil
}
