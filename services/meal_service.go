package services

import (
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"

	"gorm.io/gorm"
)

type MealInput struct {
	Date  string   `json:"date" binding:"required"` // YYYY-MM-DD
	Title string   `json:"title" binding:"required"`
	Items []string `json:"items"`
}

// mealWindow narrows a meals query to [start,end]. Filters on the
// plain date column when the schema has one, otherwise on the date
// part of ate_at.
func mealWindow(q *gorm.DB, start, end *time.Time) *gorm.DB {
	if config.Caps.MealDateColumn {
		if start != nil {
			q = q.Where("date >= ?", *start)
		}
		if end != nil {
			q = q.Where("date <= ?", *end)
		}
		return q
	}
	if start != nil {
		q = q.Where("DATE(ate_at) >= DATE(?)", *start)
	}
	if end != nil {
		q = q.Where("DATE(ate_at) <= DATE(?)", *end)
	}
	return q
}

func ListMeals(scope *config.UserScope, start, end *time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := scope.Run(func(tx *gorm.DB) error {
		q := tx.Preload("Items").Where("user_id = ?", scope.UserID())
		q = mealWindow(q, start, end)
		return q.Order("date, ate_at").Find(&meals).Error
	})
	return meals, err
}

// CreateMeals inserts user-authored meals with their item lines.
func CreateMeals(scope *config.UserScope, inputs []MealInput) (int, error) {
	created := 0
	err := scope.Run(func(tx *gorm.DB) error {
		for _, in := range inputs {
			d, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
			if err != nil {
				return err
			}
			meal := models.Meal{
				UserID: scope.UserID(),
				Date:   d,
				AteAt:  atClock(d, "12:00"),
				Title:  in.Title,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
			for _, name := range in.Items {
				item := models.MealItem{MealID: meal.ID, Name: name, Quantity: 1}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
