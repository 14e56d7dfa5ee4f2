package services

import (
	"context"
	"errors"
	"time"

	"github.com/promit1201/fitin-v3-20177/models"

	"gorm.io/gorm"
)

var ErrMissingWorkoutType = errors.New("workout type is required")

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type LogWorkoutInput struct {
	WorkoutType             string   `json:"workout_type" binding:"required"`
	Sets                    *int     `json:"sets"`
	Reps                    *int     `json:"reps"`
	WeightLbs               *float64 `json:"weight_lbs"`
	RestTimeSeconds         *int     `json:"rest_time_seconds"`
	TotalWorkoutTimeMinutes *int     `json:"total_workout_time_minutes"`
	Notes                   string   `json:"notes"`
	WorkoutDate             string   `json:"workout_date"` // YYYY-MM-DD, defaults to today
}

func (s *WorkoutService) AddLog(ctx context.Context, userID uint, in LogWorkoutInput) (*models.WorkoutLog, error) {
	if in.WorkoutType == "" {
		return nil, ErrMissingWorkoutType
	}

	workoutDate := dayStart(time.Now())
	if in.WorkoutDate != "" {
		d, err := time.ParseInLocation("2006-01-02", in.WorkoutDate, time.Local)
		if err != nil {
			return nil, errors.New("invalid workout_date, use YYYY-MM-DD")
		}
		workoutDate = d
	}

	log := &models.WorkoutLog{
		UserID:                  userID,
		WorkoutType:             in.WorkoutType,
		Sets:                    in.Sets,
		Reps:                    in.Reps,
		WeightLbs:               in.WeightLbs,
		RestTimeSeconds:         in.RestTimeSeconds,
		TotalWorkoutTimeMinutes: in.TotalWorkoutTimeMinutes,
		Notes:                   in.Notes,
		WorkoutDate:             workoutDate,
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}

	EmitEvent(userID, "workout_log.created", log)
	return log, nil
}

func (s *WorkoutService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, dayStart(from), dayEnd(to)).
		Order("workout_date ASC, created_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *WorkoutService) ListRecent(ctx context.Context, userID uint, limit int) ([]models.WorkoutLog, error) {
	if limit <= 0 {
		limit = 10
	}
	var logs []models.WorkoutLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// CountInWindow reports how many workouts fall inside the inclusive
// calendar window, for the weekly insights card.
func (s *WorkoutService) CountInWindow(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, dayStart(from), dayEnd(to)).
		Count(&n).Error
	return n, err
}

func (s *WorkoutService) DeleteLog(ctx context.Context, userID, logID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WorkoutLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
