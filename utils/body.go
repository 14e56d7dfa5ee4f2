package utils

import (
	"errors"
	"math"
)

const (
	cmPerFoot = 30.48
	kgPerLb   = 0.45359237
)

var ErrImplausibleMetrics = errors.New("height/weight out of plausible range")

// FeetToCm and LbsToKg normalize the imperial profile variants.
func FeetToCm(ft float64) float64 { return ft * cmPerFoot }
func LbsToKg(lbs float64) float64 { return lbs * kgPerLb }

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleMetrics
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// activityMultipliers maps the profile's activity_level values onto the
// usual TDEE factors.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// MaintenanceCalories estimates daily maintenance intake from body
// metrics using a Mifflin-St Jeor base. The profile stores no sex, so
// the sex offset is the midpoint of the male (+5) and female (-161)
// constants.
func MaintenanceCalories(heightCm, weightKg float64, age int, activityLevel string) (float64, error) {
	if _, err := CalculateBMI(heightCm, weightKg); err != nil {
		return 0, err
	}
	if age <= 0 || age > 120 {
		return 0, errors.New("age out of plausible range")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) - 78
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	return math.Round(bmr * mult), nil
}

// AdjustForGoal applies the tracker's cut/bulk offsets to a maintenance
// target: 20% deficit for a cut, 15% surplus for a bulk.
func AdjustForGoal(maintenance float64, goal string) float64 {
	switch goal {
	case "cut":
		return math.Round(maintenance * 0.8)
	case "bulk":
		return math.Round(maintenance * 1.15)
	default:
		return math.Round(maintenance)
	}
}
