package models

import (
    "time"

    "gorm.io/gorm"
)

type WeightLog struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null" json:"user_id"`
    When     time.Time `gorm:"index" json:"when"`
    WeightLb int       `json:"weight_lb"`
}

type GlucoseLog struct {
    gorm.Model
    UserID uint      `gorm:"index;not null" json:"user_id"`
    When   time.Time `gorm:"index" json:"when"`
    MgDL   int       `json:"mg_dL"`
}

// MealCheck marks a planned meal done; upserted by (user, date, title).
type MealCheck struct {
    gorm.Model
    UserID      uint       `gorm:"index;not null" json:"user_id"`
    Date        time.Time  `gorm:"index" json:"date"`
    Title       string     `json:"title"`
    Complete    bool       `json:"complete"`
    CompletedAt *time.Time `json:"completed_at,omitempty"`
}
