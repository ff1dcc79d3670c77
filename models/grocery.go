package models

import (
    "gorm.io/gorm"
)

// GroceryItem is one to-buy line. The sync path keeps at most one open
// (purchased=false) row per (user, name) by updating quantity in place.
type GroceryItem struct {
    gorm.Model
    UserID    uint    `gorm:"index;not null" json:"user_id"`
    Name      string  `gorm:"index;not null" json:"name"`
    Quantity  float64 `json:"quantity"`
    Unit      string  `gorm:"size:20" json:"unit"`
    Purchased bool    `gorm:"index" json:"purchased"`

    // Filled by price assignment; zero until assigned.
    Store      string  `gorm:"size:20" json:"store,omitempty"`
    UnitPrice  float64 `json:"unit_price,omitempty"`
    TotalPrice float64 `json:"total_price,omitempty"`
}
