package services

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
)

func TestPickStoreCheapestWithOrderTieBreak(t *testing.T) {
	store, price := pickStore(map[string]float64{"ALDI": 2.00, "WALMART": 2.10, "COSTCO": 1.95}, "")
	if store != "COSTCO" || price != 1.95 {
		t.Errorf("got %s/%v, want COSTCO/1.95", store, price)
	}

	// Equal prices resolve to the first store in catalog order.
	store, _ = pickStore(map[string]float64{"ALDI": 2.00, "WALMART": 2.00, "COSTCO": 2.00}, "")
	if store != "ALDI" {
		t.Errorf("tie should pick ALDI, got %s", store)
	}

	store, _ = pickStore(map[string]float64{"ALDI": 2.00, "WALMART": 2.10}, "WALMART")
	if store != "WALMART" {
		t.Errorf("preferred store should win, got %s", store)
	}
}

func TestPricePreviewTotals(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "price@test.dev")
	scope := newTestScope(t, db, u.ID)

	for _, it := range []models.GroceryItem{
		{UserID: u.ID, Name: "eggs", Quantity: 2},      // COSTCO 3.09
		{UserID: u.ID, Name: "mystery item", Quantity: 0}, // default book, COSTCO 1.95
		{UserID: u.ID, Name: "bought", Quantity: 1, Purchased: true},
	} {
		if err := db.Create(&it).Error; err != nil {
			t.Fatal(err)
		}
	}

	res, err := PricePreview(scope)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("priced %d items, want 2 (open only)", len(res.Items))
	}
	if res.Items[0].TotalPrice != 6.18 {
		t.Errorf("eggs total = %v, want 6.18", res.Items[0].TotalPrice)
	}
	if res.Items[1].TotalPrice != 1.95 {
		t.Errorf("default-priced total = %v, want 1.95 (quantity floored to 1)", res.Items[1].TotalPrice)
	}
	if res.GrandTotal != 8.13 {
		t.Errorf("grand total = %v, want 8.13", res.GrandTotal)
	}
	for _, store := range Bank().Stores {
		if _, ok := res.Totals[store]; !ok {
			t.Errorf("totals missing store %s", store)
		}
	}
}

func TestPricePreviewPreferredStoreFromNotes(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "price-pref@test.dev")
	seedIntake(t, db, &models.Intake{UserID: u.ID, FoodNotes: "I shop at Walmart mostly"})
	if err := db.Create(&models.GroceryItem{UserID: u.ID, Name: "eggs", Quantity: 1}).Error; err != nil {
		t.Fatal(err)
	}

	res, err := PricePreview(newTestScope(t, db, u.ID))
	if err != nil {
		t.Fatal(err)
	}
	if res.Items[0].Store != "WALMART" {
		t.Errorf("store = %s, want WALMART from notes", res.Items[0].Store)
	}
}

func TestPricePreviewPreferredStoreFromWorkoutNotes(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "price-pref-wo@test.dev")
	seedIntake(t, db, &models.Intake{UserID: u.ID, WorkoutNotes: "gym is next to the Costco"})
	if err := db.Create(&models.GroceryItem{UserID: u.ID, Name: "eggs", Quantity: 1}).Error; err != nil {
		t.Fatal(err)
	}

	res, err := PricePreview(newTestScope(t, db, u.ID))
	if err != nil {
		t.Fatal(err)
	}
	if res.Items[0].Store != "COSTCO" {
		t.Errorf("store = %s, want COSTCO from workout notes", res.Items[0].Store)
	}
}

func TestPriceAssignPersistsToDB(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "assign@test.dev")
	if err := db.Create(&models.GroceryItem{UserID: u.ID, Name: "avocado", Quantity: 4}).Error; err != nil {
		t.Fatal(err)
	}

	res, err := PriceAssign(newTestScope(t, db, u.ID))
	if err != nil {
		t.Fatal(err)
	}
	if res.Persist.Backend != "db" {
		t.Fatalf("backend = %s, want db", res.Persist.Backend)
	}
	if res.Updated != 1 {
		t.Errorf("updated = %d, want 1", res.Updated)
	}

	var item models.GroceryItem
	if err := db.Where("user_id = ?", u.ID).First(&item).Error; err != nil {
		t.Fatal(err)
	}
	if item.Store != "COSTCO" || item.UnitPrice != 0.79 || item.TotalPrice != 3.16 {
		t.Errorf("persisted pricing = %s/%v/%v", item.Store, item.UnitPrice, item.TotalPrice)
	}
}

func TestPriceAssignFileFallback(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "assign-file@test.dev")
	if err := db.Create(&models.GroceryItem{UserID: u.ID, Name: "oats", Quantity: 1}).Error; err != nil {
		t.Fatal(err)
	}

	config.App.DataDir = t.TempDir()
	oldCaps := config.Caps
	config.Caps.GroceryPricing = false
	t.Cleanup(func() { config.Caps = oldCaps })

	res, err := PriceAssign(newTestScope(t, db, u.ID))
	if err != nil {
		t.Fatal(err)
	}
	if res.Persist.Backend != "file" || res.Persist.Path == "" {
		t.Fatalf("persist = %+v, want file backend with path", res.Persist)
	}

	raw, err := os.ReadFile(res.Persist.Path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Items []PricedItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Items) != 1 || doc.Items[0].Name != "oats" {
		t.Errorf("fallback file items = %+v", doc.Items)
	}
}
