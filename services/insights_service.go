package services

import (
	"context"
	"time"

	"github.com/promit1201/fitin-v3-20177/models"
	"github.com/promit1201/fitin-v3-20177/utils"

	"gorm.io/gorm"
)

// InsightsService joins the stored logs with the pure aggregation core.
// All windows are Monday-start calendar weeks.
type InsightsService struct {
	db        *gorm.DB
	nutrition *NutritionService
	workouts  *WorkoutService
}

func NewInsightsService(db *gorm.DB, n *NutritionService, w *WorkoutService) *InsightsService {
	return &InsightsService{db: db, nutrition: n, workouts: w}
}

type WeeklySummary struct {
	WeekStart       string                `json:"week_start"`
	WeekEnd         string                `json:"week_end"`
	DaysLogged      int                   `json:"days_logged"`
	GoalAchievement int                   `json:"goal_achievement_pct"`
	Workouts        int                   `json:"workouts_this_week"`
	Achievements    int                   `json:"achievements"`
	DailyCalories   map[string]float64    `json:"daily_calories"`
	RecentFoods     []models.NutritionLog `json:"recent_foods"`
}

// WeeklySummary builds the stats the insights page shows: days logged,
// goal achievement, workout count, an achievements tally (workouts +
// days, as the original counted it) and per-day calorie totals for the
// calendar strip. The goal window is 7 days once anything was logged
// and 0 otherwise, so an empty week reads 0%, not 0/0.
func (s *InsightsService) WeeklySummary(ctx context.Context, userID uint, now time.Time) (*WeeklySummary, error) {
	weekStart := WeekStart(now)
	weekEnd := weekStart.AddDate(0, 0, 6)

	logs, err := s.nutrition.ListByDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	workoutCount, err := s.workouts.CountInWindow(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	recent, err := s.nutrition.ListRecent(ctx, userID, 4)
	if err != nil {
		return nil, err
	}

	daysLogged := WeeklyDaysLogged(logs, weekStart, weekEnd)
	totalDays := 0
	if len(logs) > 0 {
		totalDays = 7
	}

	daily := make(map[string]float64, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		daily[dayKey(d)] = DailyTotals(logs, d).Calories
	}

	return &WeeklySummary{
		WeekStart:       dayKey(weekStart),
		WeekEnd:         dayKey(weekEnd),
		DaysLogged:      daysLogged,
		GoalAchievement: GoalAchievement(daysLogged, totalDays),
		Workouts:        int(workoutCount),
		Achievements:    int(workoutCount) + daysLogged,
		DailyCalories:   daily,
		RecentFoods:     recent,
	}, nil
}

type MacroProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

type DailyBreakdown struct {
	Date     string                   `json:"date"`
	MealType string                   `json:"meal_type,omitempty"`
	Totals   MacroTotals              `json:"totals"`
	Macros   map[string]MacroProgress `json:"macros"`
}

// DailyBreakdown reports one day's totals against the macro targets.
// With a meal type selected, only that meal's logs and its per-meal
// targets are used; otherwise the whole day against daily targets.
func (s *InsightsService) DailyBreakdown(ctx context.Context, userID uint, date time.Time, mealType string) (*DailyBreakdown, error) {
	logs, err := s.nutrition.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	if mealType != "" {
		filtered := logs[:0]
		for _, l := range logs {
			if l.MealType == mealType {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}

	totals := DailyTotals(logs, date)
	target := SelectMacroTarget(mealType)

	return &DailyBreakdown{
		Date:     dayKey(date),
		MealType: mealType,
		Totals:   totals,
		Macros: map[string]MacroProgress{
			"protein": {Current: totals.Protein, Target: target.Protein, Percent: MacroPercentage(totals.Protein, target.Protein)},
			"carbs":   {Current: totals.Carbs, Target: target.Carbs, Percent: MacroPercentage(totals.Carbs, target.Carbs)},
			"fats":    {Current: totals.Fats, Target: target.Fats, Percent: MacroPercentage(totals.Fats, target.Fats)},
		},
	}, nil
}

type CalorieTarget struct {
	Maintenance float64 `json:"maintenance"`
	Goal        string  `json:"goal"`
	Target      float64 `json:"target"`
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
}

// CalorieTargetForUser derives a daily calorie target from the stored
// profile instead of the client-side calculator.
func (s *InsightsService) CalorieTargetForUser(userID uint, goal string) (*CalorieTarget, error) {
	profile, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	heightCm, weightKg, ok := NormalizedMetrics(profile)
	if !ok {
		return nil, utils.ErrImplausibleMetrics
	}

	maintenance, err := utils.MaintenanceCalories(heightCm, weightKg, profile.Age, profile.ActivityLevel)
	if err != nil {
		return nil, err
	}

	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return nil, err
	}

	return &CalorieTarget{
		Maintenance: maintenance,
		Goal:        goal,
		Target:      utils.AdjustForGoal(maintenance, goal),
		BMI:         round2(bmi),
		BMICategory: utils.BMICategory(bmi),
	}, nil
}
