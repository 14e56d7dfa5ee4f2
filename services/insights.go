package services

import (
	"math"
	"time"

	"github.com/promit1201/fitin-v3-20177/models"
)

// Pure aggregation over caller-supplied nutrition logs. No I/O here:
// every function is total over well-typed input, so the HTTP layer can
// surface whatever these return without further checks.

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type MacroTarget struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// Fixed content targets, not derived from the profile. The per-meal
// rows sum to the daily row.
var dailyMacroTarget = MacroTarget{Protein: 120, Carbs: 250, Fats: 70}

var mealMacroTargets = map[string]MacroTarget{
	"breakfast": {Protein: 30, Carbs: 60, Fats: 20},
	"lunch":     {Protein: 40, Carbs: 80, Fats: 25},
	"dinner":    {Protein: 35, Carbs: 70, Fats: 20},
	"snacks":    {Protein: 15, Carbs: 40, Fats: 5},
}

// DailyTotals sums the macro fields of every log dated on the given
// calendar day. Absent (nil) values count as zero; logs on other days
// are ignored. Empty input yields the zero value.
func DailyTotals(logs []models.NutritionLog, date time.Time) MacroTotals {
	key := dayKey(date)

	var t MacroTotals
	for _, l := range logs {
		if dayKey(l.MealDate) != key {
			continue
		}
		t.Calories += deref(l.Calories)
		t.Protein += deref(l.Protein)
		t.Carbs += deref(l.Carbs)
		t.Fats += deref(l.Fats)
	}
	return t
}

// WeeklyDaysLogged counts distinct meal dates inside the inclusive
// calendar window [weekStart, weekEnd]. A date counts once no matter
// how many meals were logged on it.
func WeeklyDaysLogged(logs []models.NutritionLog, weekStart, weekEnd time.Time) int {
	start := dayStart(weekStart)
	end := dayEnd(weekEnd)
	if end.Before(start) {
		return 0
	}

	seen := map[string]struct{}{}
	for _, l := range logs {
		d := dayStart(l.MealDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		seen[dayKey(d)] = struct{}{}
	}
	return len(seen)
}

// GoalAchievement is the rounded percentage of window days with at
// least one log. A zero-day window yields 0, not a division error.
func GoalAchievement(daysLogged, totalDays int) int {
	if totalDays == 0 {
		return 0
	}
	return int(math.Round(100 * float64(daysLogged) / float64(totalDays)))
}

// MacroPercentage reports progress toward a gram target. A zero (or
// negative) target clamps to 0 so non-finite values never reach a
// display layer.
func MacroPercentage(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round2(current / target * 100)
}

// SelectMacroTarget returns the per-meal targets for a known meal type
// and the aggregate daily targets otherwise.
func SelectMacroTarget(mealType string) MacroTarget {
	if t, ok := mealMacroTargets[mealType]; ok {
		return t
	}
	return dailyMacroTarget
}

// WeekStart truncates to the Monday of t's week. Calendar displays and
// query defaults both use Monday-start weeks.
func WeekStart(t time.Time) time.Time {
	d := dayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
