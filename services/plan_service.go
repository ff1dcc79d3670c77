package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidDays  = errors.New("days must be 1..31")
	ErrPlanNotFound = errors.New("plan not found")
)

// PlanDoc is the generated meal plan as returned to the caller and as
// written, verbatim, to the snapshot file.
type PlanDoc struct {
	Label  string     `json:"label"`
	Start  string     `json:"start"`
	End    string     `json:"end"`
	Window PlanWindow `json:"window"`
	Days   []PlanDay  `json:"days"`
}

type PlanWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PlanDay struct {
	Date  string     `json:"date"`
	Meals []PlanMeal `json:"meals"`
}

type PlanMeal struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Kcal        int      `json:"kcal"`
	Ingredients []string `json:"ingredients,omitempty"`
	Steps       []string `json:"steps,omitempty"`
}

type PlanGenerateRequest struct {
	Days           int  `json:"days"`
	Persist        bool `json:"persist"`
	IncludeRecipes bool `json:"include_recipes"`
}

type PlanSummary struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

type PlanService struct {
	gen       PlanGenerator
	snapshots *PlanSnapshotStore
}

func NewPlanService(gen PlanGenerator) *PlanService {
	return &PlanService{
		gen:       gen,
		snapshots: NewPlanSnapshotStore(config.App.DataDir),
	}
}

// Generate derives today's plan window. The external generator is
// tried first; on any unavailability the heuristic path takes over
// transparently. Persisting writes the Meal/MealItem rows and the
// snapshot from the same computed document.
func (s *PlanService) Generate(ctx context.Context, scope *config.UserScope, req PlanGenerateRequest) (*PlanDoc, error) {
	if req.Days <= 0 || req.Days > 31 {
		return nil, ErrInvalidDays
	}
	start := today()
	var doc *PlanDoc

	err := scope.Run(func(tx *gorm.DB) error {
		intake, err := loadIntake(tx, scope.UserID())
		if err != nil {
			return err
		}
		r := Rationalize(intake)
		avoids := AvoidTerms(intake)

		res := s.gen.MealPlan(ctx, MealPlanRequest{
			Start:         start,
			Days:          req.Days,
			MealsPerDay:   r.MealsPerDay,
			Times:         r.Times,
			Avoids:        avoids,
			CalorieTarget: r.CalorieTarget,
			Intake:        intake,
		})
		if res.Generated() {
			doc = res.Plan
		} else {
			utils.Log.Debug("meal plan generator unavailable", "reason", res.Reason)
			doc = buildHeuristicPlan(start, req, r, avoids, intake)
		}

		if req.Persist {
			if err := persistPlanRows(tx, scope.UserID(), doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.Persist {
		if err := s.snapshots.Save(scope.UserID(), doc); err != nil {
			return nil, err
		}
		EmitEvent(scope.UserID(), Event{Kind: "plan.generated", Data: PlanSummary{
			Start: doc.Start, End: doc.End, Label: doc.Label, Days: len(doc.Days),
		}})
	}
	return doc, nil
}

func (s *PlanService) List(userID uint) []PlanSummary {
	return s.snapshots.List(userID)
}

func (s *PlanService) Get(userID uint, start string) (*PlanDoc, error) {
	return s.snapshots.Get(userID, start)
}

// buildHeuristicPlan fills the window from the recipe selector: cyclic
// titles, scheduled times, and an even per-meal share of the daily
// calorie target (1800 when the target is unknown).
func buildHeuristicPlan(start time.Time, req PlanGenerateRequest, r RationalizeResult, avoids []string, intake *models.Intake) *PlanDoc {
	sig := ExtractSignals(IntakeNotes(intake))
	diabetic := intake != nil && intake.Diabetic
	titles := PickRecipes(sig.LowCarb, diabetic, avoids, req.Days*r.MealsPerDay)

	dailyTarget := 1800
	if r.CalorieTarget != nil {
		dailyTarget = *r.CalorieTarget
	}
	perMeal := int(math.Round(float64(dailyTarget) / float64(maxInt(1, r.MealsPerDay))))

	days := make([]PlanDay, 0, req.Days)
	k := 0
	for i := 0; i < req.Days; i++ {
		d := start.AddDate(0, 0, i)
		meals := make([]PlanMeal, 0, r.MealsPerDay)
		for j := 0; j < r.MealsPerDay; j++ {
			title := titles[k%len(titles)]
			k++
			meal := PlanMeal{
				Time:  r.Times[j%len(r.Times)],
				Title: title,
				Kcal:  perMeal,
			}
			if req.IncludeRecipes {
				meal.Ingredients, meal.Steps = recipeDetail(title)
			}
			meals = append(meals, meal)
		}
		days = append(days, PlanDay{Date: d.Format("2006-01-02"), Meals: meals})
	}

	end := start.AddDate(0, 0, req.Days-1)
	return &PlanDoc{
		Label: "Auto Plan",
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
		Window: PlanWindow{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		},
		Days: days,
	}
}

// recipeDetail renders ingredient lines and steps for a title, using
// the fallback shopping list when the catalog has no full recipe.
func recipeDetail(title string) (ingredients, steps []string) {
	if rec := Bank().RecipeByTitle(title); rec != nil {
		for _, ing := range rec.Ingredients {
			qty := strconv.FormatFloat(ing.Qty, 'f', -1, 64)
			ingredients = append(ingredients, qty+" "+ing.Unit+" "+ing.Item)
		}
		return ingredients, rec.Steps
	}
	ingredients = Bank().FallbackIngredientsForTitle(title)
	steps = []string{
		"Prep ingredients for " + title + ".",
		"Cook " + title + " and plate.",
	}
	return ingredients, steps
}

// persistPlanRows writes one Meal row per planned meal plus one
// MealItem per ingredient, straight from the computed document.
func persistPlanRows(tx *gorm.DB, userID uint, doc *PlanDoc) error {
	for _, day := range doc.Days {
		d, err := time.ParseInLocation("2006-01-02", day.Date, time.Local)
		if err != nil {
			return fmt.Errorf("plan day %q: %w", day.Date, err)
		}
		for _, pm := range day.Meals {
			meal := models.Meal{
				UserID: userID,
				Date:   d,
				AteAt:  atClock(d, pm.Time),
				Title:  pm.Title,
				Kcal:   pm.Kcal,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
			for _, ing := range pm.Ingredients {
				item := models.MealItem{MealID: meal.ID, Name: ing, Quantity: 1}
				if rec := Bank().RecipeByTitle(pm.Title); rec != nil {
					for _, ci := range rec.Ingredients {
						qty := strconv.FormatFloat(ci.Qty, 'f', -1, 64)
						if ing == qty+" "+ci.Unit+" "+ci.Item {
							item.Name = ci.Item
							item.Quantity = ci.Qty
							item.Unit = ci.Unit
						}
					}
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// atClock combines a day with an "HH:MM" string, noon on parse failure.
func atClock(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, _ = time.Parse("15:04", "12:00")
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// PlanSnapshotStore keeps one immutable JSON document per user per
// generation start date. Whole-file overwrites; not safe for two
// concurrent writers on the same user, which matches expected usage.
type PlanSnapshotStore struct {
	dir string
}

func NewPlanSnapshotStore(dataDir string) *PlanSnapshotStore {
	return &PlanSnapshotStore{dir: filepath.Join(dataDir, "plans")}
}

func (s *PlanSnapshotStore) userDir(userID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("user-%d", userID))
}

func (s *PlanSnapshotStore) Save(userID uint, doc *PlanDoc) error {
	dir := s.userDir(userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, doc.Start+".json"), raw, 0o644)
}

func (s *PlanSnapshotStore) List(userID uint) []PlanSummary {
	entries, err := os.ReadDir(s.userDir(userID))
	if err != nil {
		return []PlanSummary{}
	}
	out := []PlanSummary{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.userDir(userID), e.Name()))
		if err != nil {
			continue
		}
		var doc PlanDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		start := doc.Start
		if start == "" {
			start = e.Name()[:len(e.Name())-len(".json")]
		}
		out = append(out, PlanSummary{
			Start: start,
			End:   doc.End,
			Label: doc.Label,
			Days:  len(doc.Days),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func (s *PlanSnapshotStore) Get(userID uint, start string) (*PlanDoc, error) {
	raw, err := os.ReadFile(filepath.Join(s.userDir(userID), start+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	var doc PlanDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
