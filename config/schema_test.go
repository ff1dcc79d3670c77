package config

import "testing"

func TestResolveSchemaCapsFullSchema(t *testing.T) {
	db := scopeTestDB(t)
	old := Caps
	t.Cleanup(func() { Caps = old })

	ResolveSchemaCaps(db)
	if !Caps.GroceryPricing {
		t.Error("migrated schema should report pricing columns")
	}
	if !Caps.MealDateColumn {
		t.Error("migrated schema should report the meals date column")
	}
}
