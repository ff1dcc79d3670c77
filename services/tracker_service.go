package services

import (
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"

	"gorm.io/gorm"
)

const trackerListLimit = 30

func AddWeightLog(scope *config.UserScope, when time.Time, weightLb int) (*models.WeightLog, error) {
	if when.IsZero() {
		when = time.Now().UTC()
	}
	log := models.WeightLog{UserID: scope.UserID(), When: when, WeightLb: weightLb}
	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Create(&log).Error
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func ListWeightLogs(scope *config.UserScope) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", scope.UserID()).
			Order("\"when\" DESC").Limit(trackerListLimit).Find(&logs).Error
	})
	return logs, err
}

func AddGlucoseLog(scope *config.UserScope, when time.Time, mgDL int) (*models.GlucoseLog, error) {
	if when.IsZero() {
		when = time.Now().UTC()
	}
	log := models.GlucoseLog{UserID: scope.UserID(), When: when, MgDL: mgDL}
	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Create(&log).Error
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func ListGlucoseLogs(scope *config.UserScope) ([]models.GlucoseLog, error) {
	var logs []models.GlucoseLog
	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", scope.UserID()).
			Order("\"when\" DESC").Limit(trackerListLimit).Find(&logs).Error
	})
	return logs, err
}

// UpsertMealCheck records a planned meal as done or not done, keyed by
// (user, date, title) so re-checking the same meal updates in place.
func UpsertMealCheck(scope *config.UserScope, date time.Time, title string, complete bool) (*models.MealCheck, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	var check models.MealCheck
	err := scope.Run(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ? AND title = ?", scope.UserID(), day, title).
			First(&check).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == gorm.ErrRecordNotFound {
			check = models.MealCheck{UserID: scope.UserID(), Date: day, Title: title}
		}
		check.Complete = complete
		if complete {
			now := time.Now().UTC()
			check.CompletedAt = &now
		} else {
			check.CompletedAt = nil
		}
		return tx.Save(&check).Error
	})
	if err != nil {
		return nil, err
	}
	return &check, nil
}

func ListMealChecks(scope *config.UserScope, start, end *time.Time) ([]models.MealCheck, error) {
	var checks []models.MealCheck
	err := scope.Run(func(tx *gorm.DB) error {
		q := tx.Where("user_id = ?", scope.UserID())
		if start != nil {
			q = q.Where("date >= ?", *start)
		}
		if end != nil {
			q = q.Where("date <= ?", *end)
		}
		return q.Order("date, title").Find(&checks).Error
	})
	return checks, err
}

type ChecklistSummary struct {
	Meals struct {
		Total    int `json:"total"`
		Complete int `json:"complete"`
	} `json:"meals"`
	Workouts struct {
		Exercises int `json:"exercises"`
		Complete  int `json:"complete"`
	} `json:"workouts"`
	Groceries struct {
		Open      int `json:"open"`
		Purchased int `json:"purchased"`
	} `json:"groceries"`
}

// ChecklistOverview counts progress across meals, workout exercises
// and the grocery list for the window.
func ChecklistOverview(scope *config.UserScope, start, end time.Time) (*ChecklistSummary, error) {
	var sum ChecklistSummary
	err := scope.Run(func(tx *gorm.DB) error {
		var meals []models.Meal
		q := tx.Where("user_id = ?", scope.UserID())
		if err := mealWindow(q, &start, &end).Find(&meals).Error; err != nil {
			return err
		}
		sum.Meals.Total = len(meals)

		var checks int64
		if err := tx.Model(&models.MealCheck{}).
			Where("user_id = ? AND complete = ? AND date >= ? AND date <= ?",
				scope.UserID(), true, start, end).
			Count(&checks).Error; err != nil {
			return err
		}
		sum.Meals.Complete = int(checks)

		exerciseQ := func() *gorm.DB {
			return tx.Model(&models.WorkoutExercise{}).
				Joins("JOIN workout_sessions ON workout_sessions.id = workout_exercises.session_id").
				Where("workout_sessions.user_id = ?", scope.UserID()).
				Where("workout_sessions.date >= ? AND workout_sessions.date < ?",
					start, end.AddDate(0, 0, 1))
		}
		var exTotal, exDone int64
		if err := exerciseQ().Count(&exTotal).Error; err != nil {
			return err
		}
		if err := exerciseQ().Where("workout_exercises.complete = ?", true).Count(&exDone).Error; err != nil {
			return err
		}
		sum.Workouts.Exercises = int(exTotal)
		sum.Workouts.Complete = int(exDone)

		var open, bought int64
		if err := tx.Model(&models.GroceryItem{}).
			Where("user_id = ? AND purchased = ?", scope.UserID(), false).
			Count(&open).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.GroceryItem{}).
			Where("user_id = ? AND purchased = ?", scope.UserID(), true).
			Count(&bought).Error; err != nil {
			return err
		}
		sum.Groceries.Open = int(open)
		sum.Groceries.Purchased = int(bought)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
