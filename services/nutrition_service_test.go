package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddLogThenDailyTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	_, err := svc.AddLog(ctx, 1, LogMealInput{
		MealType: "breakfast",
		FoodName: "oatmeal",
		Calories: f(500),
		MealDate: "2024-01-01",
	})
	require.NoError(t, err)

	logs, err := svc.ListByDate(ctx, 1, date(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, 500.0, DailyTotals(logs, date(2024, time.January, 1)).Calories)

	logs, err = svc.ListByDate(ctx, 1, date(2024, time.January, 2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, DailyTotals(logs, date(2024, time.January, 2)).Calories)
}

func TestAddLogValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	_, err := svc.AddLog(ctx, 1, LogMealInput{MealType: "brunch", FoodName: "x"})
	assert.ErrorIs(t, err, ErrInvalidMealType)

	_, err = svc.AddLog(ctx, 1, LogMealInput{MealType: "lunch"})
	assert.ErrorIs(t, err, ErrMissingFoodName)

	_, err = svc.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "x", Calories: f(-1)})
	assert.ErrorIs(t, err, ErrNegativeMacro)

	_, err = svc.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "x", MealDate: "01/02/2024"})
	assert.Error(t, err)
}

func TestAddLogDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)

	logEntry, err := svc.AddLog(context.Background(), 1, LogMealInput{MealType: "snacks", FoodName: "apple"})
	require.NoError(t, err)

	assert.Equal(t, "1 serving", logEntry.Quantity)
	assert.Equal(t, dayStart(time.Now()), logEntry.MealDate.In(time.Local))
	assert.Nil(t, logEntry.Calories)
}

func TestListByDateRangeScopesToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	_, err := svc.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "mine", MealDate: "2024-01-02"})
	require.NoError(t, err)
	_, err = svc.AddLog(ctx, 2, LogMealInput{MealType: "lunch", FoodName: "theirs", MealDate: "2024-01-02"})
	require.NoError(t, err)

	logs, err := svc.ListByDateRange(ctx, 1, date(2024, time.January, 1), date(2024, time.January, 7))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "mine", logs[0].FoodName)
}

func TestListRecentNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		logEntry, err := svc.AddLog(ctx, 1, LogMealInput{MealType: "dinner", FoodName: name})
		require.NoError(t, err)
		// sqlite timestamps have second precision in some modes; force order
		db.Model(logEntry).UpdateColumn("created_at", time.Now().Add(time.Duration(logEntry.ID)*time.Second))
	}

	logs, err := svc.ListRecent(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].FoodName)
	assert.Equal(t, "second", logs[1].FoodName)
}

func TestDeleteLogOwnershipAndNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	logEntry, err := svc.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "x"})
	require.NoError(t, err)

	// another user cannot delete it
	err = svc.DeleteLog(ctx, 2, logEntry.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, svc.DeleteLog(ctx, 1, logEntry.ID))

	err = svc.DeleteLog(ctx, 1, logEntry.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
