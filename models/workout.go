package models

import (
    "time"

    "gorm.io/gorm"
)

type WorkoutSession struct {
    gorm.Model
    UserID    uint      `gorm:"index;not null" json:"user_id"`
    Date      time.Time `gorm:"index" json:"date"` // day + preferred start time
    Title     string    `json:"title"`             // "Upper" | "Lower" | ...
    Location  string    `json:"location,omitempty"`
    Exercises []WorkoutExercise `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

// Exercises are ordered by OrderIndex, not insertion order, so external
// reordering stays stable.
type WorkoutExercise struct {
    gorm.Model
    SessionID  uint   `gorm:"index;not null" json:"session_id"`
    OrderIndex int    `gorm:"index" json:"order_index"`
    Name       string `json:"name"`
    Machine    string `json:"machine,omitempty"`
    Sets       int    `json:"sets"`
    Reps       int    `json:"reps"`
    TargetWeight *int `json:"target_weight"`
    RestSec    int    `json:"rest_sec"`

    // Post-hoc tracking.
    Complete     bool `json:"complete"`
    ActualReps   *int `json:"actual_reps"`
    ActualWeight *int `json:"actual_weight"`
}
