package models

import (
    "time"

    "gorm.io/gorm"
)

// One scheduled eating occasion. Rows are written by the plan builder
// or the direct create endpoint and never mutated afterwards.
type Meal struct {
    gorm.Model
    UserID uint      `gorm:"index;not null" json:"user_id"`
    Date   time.Time `gorm:"index" json:"date"`  // calendar day of the meal
    AteAt  time.Time `json:"ate_at"`             // day + scheduled time
    Title  string    `json:"title"`
    Kcal   int       `json:"kcal"` // denormalized per-meal target
    Items  []MealItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// MealItem is one ingredient line owned by its Meal (cascade delete).
type MealItem struct {
    gorm.Model
    MealID   uint    `gorm:"index;not null" json:"meal_id"`
    Name     string  `json:"name"`
    Quantity float64 `json:"quantity"`
    Unit     string  `gorm:"size:20" json:"unit"`
    Calories int     `json:"calories"`
}
