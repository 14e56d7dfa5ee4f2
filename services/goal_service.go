package services

import (
	"errors"
	"time"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/models"

	"gorm.io/gorm"
)

var ErrMissingGoalFields = errors.New("goal_type and goal_value are required")

// SetGoal upserts by (user, goal_type): re-submitting a goal of the
// same type replaces its value instead of stacking rows.
func SetGoal(userID uint, goalType, goalValue string, targetDate *time.Time) (*models.UserGoal, error) {
	if goalType == "" || goalValue == "" {
		return nil, ErrMissingGoalFields
	}

	var goal models.UserGoal
	err := config.DB.Where("user_id = ? AND goal_type = ?", userID, goalType).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.UserGoal{UserID: userID, GoalType: goalType, GoalValue: goalValue, TargetDate: targetDate}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.GoalValue = goalValue
	goal.TargetDate = targetDate
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func ListGoals(userID uint) ([]models.UserGoal, error) {
	var goals []models.UserGoal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// DeleteGoal hard-deletes: a soft-deleted row would still hold the
// (user, goal_type) unique index and block re-setting that goal type.
func DeleteGoal(userID, goalID uint) error {
	res := config.DB.Unscoped().
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&models.UserGoal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
