package services

import (
	"math"
	"sort"
	"strings"

	"github.com/DragianXOG/diet-app/models"
)

// noteAvoidKeywords are scanned in food/workout notes in addition to
// the explicit avoid_ingredients field.
var noteAvoidKeywords = []string{
	"cilantro", "pork", "beef", "dairy", "gluten", "egg", "eggs",
	"mushroom", "onion", "fish", "seafood", "shellfish", "chicken", "turkey",
}

// AvoidTerms collects avoidance terms from the explicit intake field
// and note keywords, expands broad categories through the synonym
// table, and returns them deduplicated, lower-cased and sorted.
func AvoidTerms(intake *models.Intake) []string {
	var raw []string
	if intake != nil {
		for _, a := range strings.Split(intake.AvoidIngredients, ",") {
			if a = strings.TrimSpace(strings.ToLower(a)); a != "" {
				raw = append(raw, a)
			}
		}
		notes := strings.ToLower(intake.FoodNotes + " " + intake.WorkoutNotes)
		for _, k := range noteAvoidKeywords {
			if strings.Contains(notes, k) {
				raw = append(raw, k)
			}
		}
	}
	return ExpandAvoids(raw)
}

// ExpandAvoids maps broad categories ("seafood") to their concrete
// terms and normalizes the whole set.
func ExpandAvoids(avoids []string) []string {
	seen := map[string]bool{}
	for _, a := range avoids {
		a = strings.TrimSpace(strings.ToLower(a))
		if a == "" {
			continue
		}
		seen[a] = true
		for _, syn := range Bank().AvoidSynonyms[a] {
			seen[syn] = true
		}
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// PickRecipes returns exactly count titles. Candidates are filtered by
// avoidance terms and dietary tags; if the filter empties the catalog
// it is dropped entirely so the request is always satisfied. Draws are
// cyclic over the eligible pool in catalog order, no randomness.
func PickRecipes(lowCarb, diabetic bool, avoids []string, count int) []string {
	ok := func(r Recipe) bool {
		t := NormalizeName(r.Title)
		for _, a := range avoids {
			if strings.Contains(t, a) {
				return false
			}
		}
		if diabetic && lowCarb && !r.HasTag("diabetic") {
			return false
		}
		if lowCarb && !r.HasTag("low_carb") {
			return false
		}
		return true
	}

	recipes := Bank().Recipes
	pool := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if ok(r) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		pool = recipes
	}
	out := make([]string, 0, count)
	for i := 0; len(out) < count; i++ {
		out = append(out, pool[i%len(pool)].Title)
	}
	return out
}

// ExerciseSpec is one templated exercise, as embedded in plan output.
type ExerciseSpec struct {
	Name         string `json:"name"`
	Machine      string `json:"machine,omitempty"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	TargetWeight *int   `json:"target_weight"`
	RestSec      int    `json:"rest_sec"`
}

var sessionTitles = []string{"Upper", "Lower", "Push", "Pull", "Core"}

func SessionTitle(dayIndex int) string {
	return sessionTitles[dayIndex%5]
}

// DayTemplate builds the exercise list for a day in the 5-way
// Upper/Lower/Push/Pull/Core rotation, branching on equipment
// (machine-first, free-weight fallback). Sessions capped at 3
// exercises when the allotted time is 30 minutes or less.
func DayTemplate(eq Equipment, dayIndex, minutes int) []ExerciseSpec {
	ex := func(name, machine string, sets, reps, rest int) ExerciseSpec {
		return ExerciseSpec{Name: name, Machine: machine, Sets: sets, Reps: reps, RestSec: rest}
	}
	var out []ExerciseSpec
	switch dayIndex % 5 {
	case 0: // Upper
		if eq.Machines || eq.Smith {
			out = []ExerciseSpec{
				ex("Lat Pulldown", "Lat Pulldown", 3, 12, 60),
				ex("Seated Row", "Row Machine", 3, 12, 60),
				ex("Shoulder Press", "Machine Press", 3, 12, 60),
			}
		} else {
			out = []ExerciseSpec{
				ex("DB Bench Press", "Dumbbells", 3, 12, 60),
				ex("One-Arm DB Row", "Dumbbells", 3, 12, 60),
				ex("DB Shoulder Press", "Dumbbells", 3, 12, 60),
			}
		}
	case 1: // Lower
		if eq.Smith {
			out = []ExerciseSpec{
				ex("Smith Squat", "Smith Machine", 4, 10, 60),
				ex("Smith RDL", "Smith Machine", 3, 12, 60),
				ex("Leg Press", "Leg Press", 3, 12, 60),
			}
		} else if eq.Machines {
			out = []ExerciseSpec{
				ex("Leg Press", "Leg Press", 3, 12, 60),
				ex("Leg Curl", "Hamstring Curl", 3, 12, 60),
				ex("Leg Extension", "Quad Extension", 3, 12, 60),
			}
		} else {
			out = []ExerciseSpec{
				ex("Goblet Squat", "Dumbbells", 3, 12, 60),
				ex("DB RDL", "Dumbbells", 3, 12, 60),
				ex("Reverse Lunge", "Bodyweight/Dumbbells", 3, 12, 60),
			}
		}
	case 2: // Push
		out = []ExerciseSpec{
			ex("Incline Press", "Machine/Dumbbells", 3, 12, 60),
			ex("Lateral Raise", "Dumbbells", 3, 12, 60),
			ex("Triceps Pushdown", "Cable", 3, 12, 60),
		}
	case 3: // Pull
		out = []ExerciseSpec{
			ex("Assisted Pull-Up", "Assisted Pull-Up", 3, 12, 60),
			ex("Cable Row", "Row Machine", 3, 12, 60),
			ex("Biceps Curl", "Cable/Dumbbells", 3, 12, 60),
		}
	default: // Core/Conditioning
		out = []ExerciseSpec{
			ex("Plank", "Mat", 3, 45, 45),
			ex("Cable Woodchop", "Cable", 3, 12, 60),
			ex("Farmer Carry", "Dumbbells", 4, 40, 60),
		}
	}
	if minutes <= 30 && len(out) > 3 {
		out = out[:3]
	}
	return out
}

// SessionDayIndices spreads perWeek sessions evenly across a window of
// days (every day when perWeek >= days).
func SessionDayIndices(days, perWeek int) []int {
	if perWeek >= days {
		idxs := make([]int, days)
		for i := range idxs {
			idxs[i] = i
		}
		return idxs
	}
	step := float64(days) / float64(perWeek)
	var picks []int
	for i := 0; i < perWeek; i++ {
		x := int(math.Round(float64(i) * step))
		if x >= days {
			x = days - 1
		}
		if len(picks) == 0 || picks[len(picks)-1] != x {
			picks = append(picks, x)
		}
	}
	return picks
}
