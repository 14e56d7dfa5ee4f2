package services

import (
	"context"
	"errors"
	"time"

	"github.com/promit1201/fitin-v3-20177/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidMealType = errors.New("meal type must be breakfast, lunch, dinner or snacks")
	ErrNegativeMacro   = errors.New("nutrition values must not be negative")
	ErrMissingFoodName = errors.New("food name is required")
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snacks":    true,
}

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

type LogMealInput struct {
	MealType string   `json:"meal_type" binding:"required"`
	FoodName string   `json:"food_name" binding:"required"`
	Quantity string   `json:"quantity"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	MealDate string   `json:"meal_date"` // YYYY-MM-DD, defaults to today
}

// AddLog validates and inserts one nutrition log. Malformed numeric
// fields are rejected here so the aggregation core never sees them.
func (s *NutritionService) AddLog(ctx context.Context, userID uint, in LogMealInput) (*models.NutritionLog, error) {
	if !mealTypes[in.MealType] {
		return nil, ErrInvalidMealType
	}
	if in.FoodName == "" {
		return nil, ErrMissingFoodName
	}
	for _, v := range []*float64{in.Calories, in.Protein, in.Carbs, in.Fats} {
		if v != nil && *v < 0 {
			return nil, ErrNegativeMacro
		}
	}

	mealDate := dayStart(time.Now())
	if in.MealDate != "" {
		d, err := time.ParseInLocation("2006-01-02", in.MealDate, time.Local)
		if err != nil {
			return nil, errors.New("invalid meal_date, use YYYY-MM-DD")
		}
		mealDate = d
	}

	quantity := in.Quantity
	if quantity == "" {
		quantity = "1 serving"
	}

	log := &models.NutritionLog{
		UserID:   userID,
		MealType: in.MealType,
		FoodName: in.FoodName,
		Quantity: quantity,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		MealDate: mealDate,
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}

	EmitEvent(userID, "nutrition_log.created", log)
	return log, nil
}

func (s *NutritionService) ListByDate(ctx context.Context, userID uint, date time.Time) ([]models.NutritionLog, error) {
	return s.ListByDateRange(ctx, userID, date, date)
}

// ListByDateRange returns logs whose meal date falls inside the
// inclusive calendar window [from, to].
func (s *NutritionService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_date >= ? AND meal_date <= ?", userID, dayStart(from), dayEnd(to)).
		Order("meal_date ASC, created_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *NutritionService) ListRecent(ctx context.Context, userID uint, limit int) ([]models.NutritionLog, error) {
	if limit <= 0 {
		limit = 4
	}
	var logs []models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DeleteLog removes one of the user's own entries. Deleting someone
// else's row or a missing row reports not-found.
func (s *NutritionService) DeleteLog(ctx context.Context, userID, logID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.NutritionLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	EmitEvent(userID, "nutrition_log.deleted", map[string]uint{"id": logID})
	return nil
}
