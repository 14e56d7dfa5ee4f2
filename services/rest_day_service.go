package services

import (
	"errors"
	"time"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/models"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// ToggleRestDay marks the date as a rest day, or unmarks it when it
// already is one. Returns whether the date is a rest day afterwards.
func ToggleRestDay(userID uint, date time.Time) (bool, error) {
	day := dayStartLocal(date)

	var rd models.RestDay
	err := config.DB.
		Where("user_id = ? AND rest_date = ?", userID, day).
		First(&rd).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rd = models.RestDay{UserID: userID, RestDate: day}
		if err := config.DB.Create(&rd).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err := config.DB.Unscoped().Delete(&rd).Error; err != nil {
		return true, err
	}
	return false, nil
}

func ListRestDays(userID uint, from, to time.Time) ([]models.RestDay, error) {
	var days []models.RestDay
	err := config.DB.
		Where("user_id = ? AND rest_date >= ? AND rest_date <= ?", userID, dayStartLocal(from), dayStartLocal(to)).
		Order("rest_date ASC").
		Find(&days).Error
	return days, err
}
