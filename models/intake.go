package models

import (
    "gorm.io/gorm"
)

// Intake is the user's self-reported health/preference profile.
// One row per user; POST /intake upserts fields present in the payload.
type Intake struct {
    gorm.Model
    UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

    Name     string `json:"name"`
    Age      int    `json:"age"`
    Sex      string `gorm:"size:10" json:"sex"` // "M" | "F" | other
    HeightIn int    `json:"height_in"`
    WeightLb int    `json:"weight_lb"`

    Diabetic   bool   `json:"diabetic"`
    Conditions string `gorm:"type:text" json:"conditions"`
    Meds       string `gorm:"type:text" json:"meds"`
    Goals      string `gorm:"type:text" json:"goals"`

    Zip          string `gorm:"size:10" json:"zip"`
    Gym          string `json:"gym"`
    FoodNotes    string `gorm:"type:text" json:"food_notes"`
    WorkoutNotes string `gorm:"type:text" json:"workout_notes"`

    // Explicit overrides; zero means "not set", heuristics apply.
    MealsPerDay        int    `json:"meals_per_day"`
    WorkoutDaysPerWeek int    `json:"workout_days_per_week"`
    WorkoutSessionMin  int    `json:"workout_session_min"`
    WorkoutTime        string `gorm:"size:5" json:"workout_time"` // "HH:MM"
    AvoidIngredients   string `gorm:"type:text" json:"avoid_ingredients"`
}
