package services

import (
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

func AddGrocery(scope *config.UserScope, name string, quantity float64) (*models.GroceryItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	item := models.GroceryItem{UserID: scope.UserID(), Name: name, Quantity: quantity}
	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func ListGroceries(scope *config.UserScope, onlyOpen bool) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := scope.Run(func(tx *gorm.DB) error {
		q := tx.Where("user_id = ?", scope.UserID())
		if onlyOpen {
			q = q.Where("purchased = ?", false)
		}
		return q.Order("id").Find(&items).Error
	})
	return items, err
}

func ToggleGroceryPurchased(scope *config.UserScope, itemID uint) (*models.GroceryItem, error) {
	var item models.GroceryItem
	err := scope.Run(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", itemID, scope.UserID()).First(&item).Error; err != nil {
			return err
		}
		item.Purchased = !item.Purchased
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type GrocerySyncRequest struct {
	Start         time.Time
	End           time.Time
	Persist       bool
	ClearExisting bool
	SeedIfEmpty   bool
}

type GrocerySyncResult struct {
	Created int        `json:"created"`
	Count   int        `json:"count"`
	Window  PlanWindow `json:"window"`
}

// SyncGroceriesFromMeals aggregates ingredient demand across the
// window into one open grocery row per name. Re-running the same
// window overwrites quantities with the freshly computed totals, so
// the call is idempotent rather than additive.
func SyncGroceriesFromMeals(scope *config.UserScope, req GrocerySyncRequest) (*GrocerySyncResult, error) {
	res := &GrocerySyncResult{
		Window: PlanWindow{
			Start: req.Start.Format("2006-01-02"),
			End:   req.End.Format("2006-01-02"),
		},
	}
	err := scope.Run(func(tx *gorm.DB) error {
		if req.ClearExisting {
			if err := tx.Where("user_id = ? AND purchased = ?", scope.UserID(), false).
				Delete(&models.GroceryItem{}).Error; err != nil {
				return err
			}
		}

		meals, err := mealsInWindow(tx, scope.UserID(), req.Start, req.End)
		if err != nil {
			return err
		}
		if len(meals) == 0 && req.SeedIfEmpty {
			if err := seedDefaultMeals(tx, scope.UserID(), req.Start, req.End); err != nil {
				return err
			}
			if meals, err = mealsInWindow(tx, scope.UserID(), req.Start, req.End); err != nil {
				return err
			}
		}

		demand := aggregateDemand(meals)
		res.Count = len(demand)
		if !req.Persist {
			return nil
		}

		for _, nd := range demand {
			var existing models.GroceryItem
			err := tx.Where("user_id = ? AND name = ? AND purchased = ?", scope.UserID(), nd.name, false).
				First(&existing).Error
			switch {
			case err == nil:
				// Idempotent: set to the computed quantity, don't add.
				existing.Quantity = nd.qty
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				item := models.GroceryItem{UserID: scope.UserID(), Name: nd.name, Quantity: nd.qty}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				res.Created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	utils.Log.Info("groceries synced",
		"user", scope.UserID(), "created", res.Created, "count", res.Count)
	if req.Persist {
		EmitEvent(scope.UserID(), Event{Kind: "groceries.synced", Data: res})
	}
	return res, nil
}

func mealsInWindow(tx *gorm.DB, userID uint, start, end time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	q := tx.Preload("Items").Where("user_id = ?", userID)
	q = mealWindow(q, &start, &end)
	err := q.Find(&meals).Error
	return meals, err
}

type nameDemand struct {
	name string
	qty  float64
}

// aggregateDemand sums item quantities per ingredient name with a
// floor of 1 per occurrence; meals without stored items contribute
// their fallback shopping list. Output order is deterministic (first
// appearance).
func aggregateDemand(meals []models.Meal) []nameDemand {
	totals := map[string]float64{}
	var order []string
	add := func(name string, qty float64) {
		if qty < 1 {
			qty = 1
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += qty
	}
	for _, m := range meals {
		if len(m.Items) > 0 {
			for _, it := range m.Items {
				if it.Name == "" {
					continue
				}
				add(it.Name, it.Quantity)
			}
			continue
		}
		for _, name := range Bank().FallbackIngredientsForTitle(m.Title) {
			add(name, 1)
		}
	}
	out := make([]nameDemand, 0, len(order))
	for _, name := range order {
		out = append(out, nameDemand{name: name, qty: totals[name]})
	}
	return out
}

// seedDefaultMeals persists a rotating 2-meal/day default across the
// window so a fresh account still gets a usable grocery list.
func seedDefaultMeals(tx *gorm.DB, userID uint, start, end time.Time) error {
	pairs := Bank().DefaultPairs
	offset := 0
	for cur := start; !cur.After(end); cur, offset = cur.AddDate(0, 0, 1), offset+1 {
		for j := 0; j < 2; j++ {
			title := pairs[(offset+j)%len(pairs)]
			meal := models.Meal{
				UserID: userID,
				Date:   cur,
				AteAt:  atClock(cur, "12:00"),
				Title:  title,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
			for _, name := range Bank().FallbackIngredientsForTitle(title) {
				item := models.MealItem{MealID: meal.ID, Name: name, Quantity: 1}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
