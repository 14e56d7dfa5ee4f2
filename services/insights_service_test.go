package services

import (
	"context"
	"testing"
	"time"

	"github.com/promit1201/fitin-v3-20177/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsights(t *testing.T) (*InsightsService, *NutritionService, *WorkoutService) {
	db := newTestDB(t)
	config.DB = db
	n := NewNutritionService(db)
	w := NewWorkoutService(db)
	return NewInsightsService(db, n, w), n, w
}

func TestWeeklySummary(t *testing.T) {
	svc, n, w := newInsights(t)
	ctx := context.Background()

	// 2024-01-01 is a Monday; log on Monday and Wednesday
	_, err := n.AddLog(ctx, 1, LogMealInput{MealType: "breakfast", FoodName: "eggs", Calories: f(300), MealDate: "2024-01-01"})
	require.NoError(t, err)
	_, err = n.AddLog(ctx, 1, LogMealInput{MealType: "dinner", FoodName: "rice", Calories: f(450), MealDate: "2024-01-01"})
	require.NoError(t, err)
	_, err = n.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "salad", Calories: f(200), MealDate: "2024-01-03"})
	require.NoError(t, err)

	// outside the week, must not count
	_, err = n.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "old", Calories: f(900), MealDate: "2023-12-31"})
	require.NoError(t, err)

	_, err = w.AddLog(ctx, 1, LogWorkoutInput{WorkoutType: "bench press", WorkoutDate: "2024-01-02"})
	require.NoError(t, err)

	got, err := svc.WeeklySummary(ctx, 1, date(2024, time.January, 4))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", got.WeekStart)
	assert.Equal(t, "2024-01-07", got.WeekEnd)
	assert.Equal(t, 2, got.DaysLogged)
	assert.Equal(t, 29, got.GoalAchievement) // round(100*2/7)
	assert.Equal(t, 1, got.Workouts)
	assert.Equal(t, 3, got.Achievements)
	assert.Equal(t, 750.0, got.DailyCalories["2024-01-01"])
	assert.Equal(t, 200.0, got.DailyCalories["2024-01-03"])
	assert.Equal(t, 0.0, got.DailyCalories["2024-01-05"])
}

func TestWeeklySummaryEmptyWeek(t *testing.T) {
	svc, _, _ := newInsights(t)

	got, err := svc.WeeklySummary(context.Background(), 1, date(2024, time.January, 4))
	require.NoError(t, err)

	assert.Zero(t, got.DaysLogged)
	assert.Zero(t, got.GoalAchievement, "an empty week is 0%, never 0/0")
	assert.Empty(t, got.RecentFoods)
}

func TestDailyBreakdownMealFilter(t *testing.T) {
	svc, n, _ := newInsights(t)
	ctx := context.Background()

	_, err := n.AddLog(ctx, 1, LogMealInput{MealType: "breakfast", FoodName: "eggs", Protein: f(20), Carbs: f(5), Fats: f(12), MealDate: "2024-01-01"})
	require.NoError(t, err)
	_, err = n.AddLog(ctx, 1, LogMealInput{MealType: "lunch", FoodName: "chicken", Protein: f(40), Carbs: f(30), Fats: f(10), MealDate: "2024-01-01"})
	require.NoError(t, err)

	day := date(2024, time.January, 1)

	whole, err := svc.DailyBreakdown(ctx, 1, day, "")
	require.NoError(t, err)
	assert.Equal(t, 60.0, whole.Totals.Protein)
	assert.Equal(t, 50.0, whole.Macros["protein"].Percent) // 60 of 120

	breakfast, err := svc.DailyBreakdown(ctx, 1, day, "breakfast")
	require.NoError(t, err)
	assert.Equal(t, 20.0, breakfast.Totals.Protein)
	assert.Equal(t, 30.0, breakfast.Macros["protein"].Target)
	assert.InDelta(t, 66.67, breakfast.Macros["protein"].Percent, 0.01)
}

func TestCalorieTargetForUser(t *testing.T) {
	svc, _, _ := newInsights(t)

	// incomplete profile is an error, mirrored as a redirect upstream
	_, err := svc.CalorieTargetForUser(1, "maintain")
	assert.Error(t, err)

	age := 30
	_, err = UpdateProfile(1, ProfileInput{
		Age:           &age,
		HeightCm:      f(180),
		WeightKg:      f(80),
		ActivityLevel: "moderate",
	})
	require.NoError(t, err)

	got, err := svc.CalorieTargetForUser(1, "cut")
	require.NoError(t, err)

	// BMR 10*80+6.25*180-5*30-78 = 1697; *1.55 = 2630 (rounded); cut = *0.8
	assert.Equal(t, 2630.0, got.Maintenance)
	assert.Equal(t, 2104.0, got.Target)
	assert.Equal(t, "Normal weight", got.BMICategory)
}
