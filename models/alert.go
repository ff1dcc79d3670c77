package models

import "time"

// Alert is a persisted safety advisory (aggressive goal pace, diabetic
// flag without a low-carb plan, ...). Also broadcast over /realtime.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Type      string    `gorm:"size:20" json:"type"` // "warning" | "info"
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
