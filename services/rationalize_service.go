package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

// RationalizeResult is the structured nutrition prescription derived
// from an Intake. CalorieTarget is nil when anthropometrics are
// missing; callers substitute their own default, never zero.
type RationalizeResult struct {
	DietLabel      string   `json:"diet_label"`
	MealsPerDay    int      `json:"meals_per_day"`
	Times          []string `json:"times"`
	ProteinTarget  int      `json:"protein_target"`
	CarbTarget     int      `json:"carb_target"`
	CalorieTarget  *int     `json:"calorie_target"`
	BMI            *float64 `json:"bmi,omitempty"`
	BMICategory    string   `json:"bmi_category,omitempty"`
	SafetyRequired bool     `json:"safety_required"`
	Warnings       []string `json:"warnings"`
}

// Rationalize turns an Intake (possibly nil) into a prescription.
// Deterministic: same intake, same output.
func Rationalize(intake *models.Intake) RationalizeResult {
	notes := IntakeNotes(intake)
	sig := ExtractSignals(notes)

	mpd := 0
	if intake != nil && intake.MealsPerDay > 0 {
		mpd = clampInt(intake.MealsPerDay, 1, 8)
	} else if n, ok := ParseMealsPerDay(notes); ok {
		mpd = n
	} else if sig.LowCarb || sig.TwoMealIF {
		mpd = 2
	} else {
		mpd = 3
	}

	label := "balanced; 3/day"
	if sig.LowCarb || sig.TwoMealIF {
		label = "lower-carb; IF 16:8 (2/day)"
	}

	protein, carb := 110, 200
	if sig.LowCarb {
		protein, carb = 140, 120
	}

	var warnings []string
	if sig.Aggressive {
		warnings = append(warnings, "Aggressive goal pace — consider medical guidance.")
	}
	if intake != nil && intake.Diabetic && !sig.LowCarb {
		warnings = append(warnings, "Diabetic flag set — consider lower carb options.")
	}

	var bmi *float64
	var bmiCat string
	if intake != nil && intake.HeightIn > 0 && intake.WeightLb > 0 {
		cm := float64(intake.HeightIn) * utils.InToCm
		kg := float64(intake.WeightLb) * utils.LbToKg
		if v, err := utils.CalculateBMI(cm, kg); err == nil {
			v = math.Round(v*10) / 10
			bmi = &v
			bmiCat = utils.BMICategory(v)
		}
	}

	return RationalizeResult{
		DietLabel:      label,
		MealsPerDay:    mpd,
		Times:          MealTimes(mpd),
		ProteinTarget:  protein,
		CarbTarget:     carb,
		CalorieTarget:  CalorieTarget(intake),
		BMI:            bmi,
		BMICategory:    bmiCat,
		SafetyRequired: sig.Aggressive,
		Warnings:       warnings,
	}
}

// RationalizeForUser loads the stored Intake inside the scope and
// rationalizes it. A missing Intake is fine (defaults apply).
func RationalizeForUser(scope *config.UserScope) (RationalizeResult, error) {
	var out RationalizeResult
	err := scope.Run(func(tx *gorm.DB) error {
		intake, err := loadIntake(tx, scope.UserID())
		if err != nil {
			return err
		}
		out = Rationalize(intake)
		return nil
	})
	return out, err
}

func loadIntake(tx *gorm.DB, userID uint) (*models.Intake, error) {
	var intake models.Intake
	err := tx.Where("user_id = ?", userID).Order("created_at DESC").First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &intake, nil
}

// MealTimes returns the clock schedule for n meals. Fixed schedules
// through 3 meals; beyond that, even spacing across 08:00-20:00.
func MealTimes(n int) []string {
	switch n {
	case 1:
		return []string{"12:00"}
	case 2:
		return []string{"12:00", "18:00"}
	case 3:
		return []string{"08:00", "12:00", "18:00"}
	}
	const start, end = 8 * 60, 20 * 60
	step := (end - start) / (n - 1)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := start + i*step
		out = append(out, fmt.Sprintf("%02d:%02d", v/60, v%60))
	}
	return out
}

// CalorieTarget computes the daily target: Mifflin-St Jeor BMR scaled
// by an activity factor from workout days/week, minus a deficit from
// the stated weekly loss rate (default 1 lb/week, deficit clamped to
// [250,1000] kcal), floored at 1200 (F) / 1400 (other). Returns nil
// when age, height or weight are missing.
func CalorieTarget(intake *models.Intake) *int {
	if intake == nil || intake.Age <= 0 || intake.HeightIn <= 0 || intake.WeightLb <= 0 {
		return nil
	}
	kg := float64(intake.WeightLb) * utils.LbToKg
	cm := float64(intake.HeightIn) * utils.InToCm
	bmr := utils.MifflinStJeorBMR(kg, cm, intake.Age, intake.Sex)

	act := 1.2
	switch wdw := intake.WorkoutDaysPerWeek; {
	case wdw <= 0:
		act = 1.2
	case wdw <= 2:
		act = 1.3
	case wdw <= 4:
		act = 1.5
	case wdw <= 6:
		act = 1.7
	default:
		act = 1.9
	}
	tdee := bmr * act

	rate := 1.0
	if r, ok := ParseLossPerWeek(intake.Goals); ok {
		rate = r
	} else if r, ok := ParseLossPerWeek(IntakeNotes(intake)); ok {
		rate = r
	}
	deficit := math.Min(1000, math.Max(250, rate*500))

	target := int(math.Round(tdee - deficit))
	floor := 1400
	if intake.Sex == "F" || intake.Sex == "f" {
		floor = 1200
	}
	if target < floor {
		target = floor
	}
	return &target
}
