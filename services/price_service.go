package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

type PricedItem struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Store      string  `json:"suggested_store"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type PricePreviewResult struct {
	Items      []PricedItem       `json:"items"`
	Totals     map[string]float64 `json:"totals"`
	GrandTotal float64            `json:"grand_total"`
}

type PricePersistInfo struct {
	Backend string `json:"backend"`
	Path    string `json:"path,omitempty"`
}

type PriceAssignResult struct {
	Updated    int                `json:"updated"`
	Items      []PricedItem       `json:"items"`
	Totals     map[string]float64 `json:"totals"`
	GrandTotal float64            `json:"grand_total"`
	Persist    PricePersistInfo   `json:"persist"`
}

// preferredStore returns the first catalog store named in the user's
// food or workout notes, or "" when none is mentioned.
func preferredStore(intake *models.Intake) string {
	if intake == nil {
		return ""
	}
	notes := strings.ToLower(intake.FoodNotes + " " + intake.WorkoutNotes)
	for _, store := range Bank().Stores {
		if strings.Contains(notes, strings.ToLower(store)) {
			return store
		}
	}
	return ""
}

// pickStore chooses the store for one item: the preferred store when
// set, otherwise the cheapest price with catalog store order breaking
// ties.
func pickStore(prices map[string]float64, preferred string) (string, float64) {
	if preferred != "" {
		if p, ok := prices[preferred]; ok {
			return preferred, p
		}
	}
	var best string
	var bestPrice float64
	for _, store := range Bank().Stores {
		p, ok := prices[store]
		if !ok {
			continue
		}
		if best == "" || p < bestPrice {
			best, bestPrice = store, p
		}
	}
	return best, bestPrice
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func priceItems(items []models.GroceryItem, preferred string) ([]PricedItem, map[string]float64, float64) {
	totals := map[string]float64{}
	for _, store := range Bank().Stores {
		totals[store] = 0
	}
	var grand float64
	priced := make([]PricedItem, 0, len(items))
	for _, it := range items {
		store, unit := pickStore(Bank().PricesForItem(it.Name), preferred)
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total := round2(unit * qty)
		totals[store] = round2(totals[store] + total)
		grand += total
		priced = append(priced, PricedItem{
			ID:         it.ID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Store:      store,
			UnitPrice:  unit,
			TotalPrice: total,
		})
	}
	return priced, totals, round2(grand)
}

// PricePreview prices the open grocery list without writing anything.
func PricePreview(scope *config.UserScope) (*PricePreviewResult, error) {
	var items []models.GroceryItem
	var intake *models.Intake
	err := scope.Run(func(tx *gorm.DB) error {
		var err error
		if intake, err = loadIntake(tx, scope.UserID()); err != nil {
			return err
		}
		return tx.Where("user_id = ? AND purchased = ?", scope.UserID(), false).
			Order("id").Find(&items).Error
	})
	if err != nil {
		return nil, err
	}
	priced, totals, grand := priceItems(items, preferredStore(intake))
	return &PricePreviewResult{Items: priced, Totals: totals, GrandTotal: grand}, nil
}

// PriceAssign prices the open list and persists the assignment: into
// the grocery rows when the schema carries pricing columns, otherwise
// into a per-user JSON file under the data directory.
func PriceAssign(scope *config.UserScope) (*PriceAssignResult, error) {
	var items []models.GroceryItem
	var intake *models.Intake
	err := scope.Run(func(tx *gorm.DB) error {
		var err error
		if intake, err = loadIntake(tx, scope.UserID()); err != nil {
			return err
		}
		return tx.Where("user_id = ? AND purchased = ?", scope.UserID(), false).
			Order("id").Find(&items).Error
	})
	if err != nil {
		return nil, err
	}
	priced, totals, grand := priceItems(items, preferredStore(intake))
	res := &PriceAssignResult{Items: priced, Totals: totals, GrandTotal: grand}

	if config.Caps.GroceryPricing {
		err = scope.Run(func(tx *gorm.DB) error {
			for _, p := range priced {
				updates := map[string]interface{}{
					"store":       p.Store,
					"unit_price":  p.UnitPrice,
					"total_price": p.TotalPrice,
				}
				if err := tx.Model(&models.GroceryItem{}).
					Where("id = ? AND user_id = ?", p.ID, scope.UserID()).
					Updates(updates).Error; err != nil {
					return err
				}
				res.Updated++
			}
			return nil
		})
		if err == nil {
			res.Persist = PricePersistInfo{Backend: "db"}
			return res, nil
		}
		utils.Log.Warn("price assignment db write failed, using file fallback", "err", err)
		res.Updated = 0
	}

	path, err := writePriceFile(scope.UserID(), priced)
	if err != nil {
		return nil, err
	}
	res.Updated = len(priced)
	res.Persist = PricePersistInfo{Backend: "file", Path: path}
	return res, nil
}

func writePriceFile(userID uint, items []PricedItem) (string, error) {
	dir := filepath.Join(config.App.DataDir, "prices")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("user-%d.json", userID))
	doc := struct {
		Items   []PricedItem `json:"items"`
		SavedAt time.Time    `json:"saved_at"`
	}{Items: items, SavedAt: time.Now().UTC()}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
