package services

import (
	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

// IntakeInput carries the upsert payload. Pointer fields distinguish
// "absent" from zero so a partial update never wipes stored values.
type IntakeInput struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Sex      *string `json:"sex"`
	HeightIn *int    `json:"height_in"`
	WeightLb *int    `json:"weight_lb"`

	Diabetic   *bool   `json:"diabetic"`
	Conditions *string `json:"conditions"`
	Meds       *string `json:"meds"`
	Goals      *string `json:"goals"`

	Zip          *string `json:"zip"`
	Gym          *string `json:"gym"`
	FoodNotes    *string `json:"food_notes"`
	WorkoutNotes *string `json:"workout_notes"`

	MealsPerDay        *int    `json:"meals_per_day"`
	WorkoutDaysPerWeek *int    `json:"workout_days_per_week"`
	WorkoutSessionMin  *int    `json:"workout_session_min"`
	WorkoutTime        *string `json:"workout_time"`
	AvoidIngredients   *string `json:"avoid_ingredients"`
}

func (in *IntakeInput) apply(intake *models.Intake) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&intake.Name, in.Name)
	setInt(&intake.Age, in.Age)
	setStr(&intake.Sex, in.Sex)
	setInt(&intake.HeightIn, in.HeightIn)
	setInt(&intake.WeightLb, in.WeightLb)
	if in.Diabetic != nil {
		intake.Diabetic = *in.Diabetic
	}
	setStr(&intake.Conditions, in.Conditions)
	setStr(&intake.Meds, in.Meds)
	setStr(&intake.Goals, in.Goals)
	setStr(&intake.Zip, in.Zip)
	setStr(&intake.Gym, in.Gym)
	setStr(&intake.FoodNotes, in.FoodNotes)
	setStr(&intake.WorkoutNotes, in.WorkoutNotes)
	setInt(&intake.MealsPerDay, in.MealsPerDay)
	setInt(&intake.WorkoutDaysPerWeek, in.WorkoutDaysPerWeek)
	setInt(&intake.WorkoutSessionMin, in.WorkoutSessionMin)
	setStr(&intake.WorkoutTime, in.WorkoutTime)
	setStr(&intake.AvoidIngredients, in.AvoidIngredients)
}

func GetIntake(scope *config.UserScope) (*models.Intake, error) {
	var intake *models.Intake
	err := scope.Run(func(tx *gorm.DB) error {
		var err error
		intake, err = loadIntake(tx, scope.UserID())
		return err
	})
	return intake, err
}

// UpsertIntake writes the profile and re-runs the rationalizer; any
// safety warnings it raises are emitted as advisories.
func UpsertIntake(scope *config.UserScope, in *IntakeInput) (*models.Intake, *RationalizeResult, error) {
	var intake models.Intake
	var result *RationalizeResult
	err := scope.Run(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", scope.UserID()).First(&intake).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == gorm.ErrRecordNotFound {
			intake = models.Intake{UserID: scope.UserID()}
		}
		in.apply(&intake)
		if err := tx.Save(&intake).Error; err != nil {
			return err
		}
		r := Rationalize(&intake)
		result = &r
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if result.SafetyRequired {
		for _, w := range result.Warnings {
			EmitAlert(scope.UserID(), "warning", w)
		}
		if config.App.AdvisoryEmail {
			var user models.User
			if config.DB.First(&user, scope.UserID()).Error == nil {
				if err := utils.SendAdvisoryEmail(user.Email, result.Warnings); err != nil {
					utils.Log.Warn("advisory email failed", "err", err)
				}
			}
		}
	}
	return &intake, result, nil
}
