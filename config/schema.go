package config

import (
	"gorm.io/gorm"

	"github.com/DragianXOG/diet-app/models"
)

// SchemaCaps describes which optional columns the connected database
// actually has. Resolved once at startup instead of probing table
// metadata on every request; deployments that migrated from older
// schema revisions may miss the pricing or timestamp columns.
type SchemaCaps struct {
	// grocery_items has store/unit_price/total_price.
	GroceryPricing bool
	// meals carries a plain date column; otherwise windows filter on
	// the date part of ate_at.
	MealDateColumn bool
}

var Caps SchemaCaps

func ResolveSchemaCaps(db *gorm.DB) {
	m := db.Migrator()
	Caps = SchemaCaps{
		GroceryPricing: m.HasColumn(&models.GroceryItem{}, "store") &&
			m.HasColumn(&models.GroceryItem{}, "unit_price") &&
			m.HasColumn(&models.GroceryItem{}, "total_price"),
		MealDateColumn: m.HasColumn(&models.Meal{}, "date"),
	}
}
