package services

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// The content bank: recipes, price book, avoidance synonyms and seed
// meals. Kept as data (and overridable from a JSON file) so selection
// logic stays independent of the shipped tables.

type CatalogIngredient struct {
	Item string  `json:"item"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

type Recipe struct {
	Title       string              `json:"title"`
	Tags        []string            `json:"tags"`
	Kcal        int                 `json:"kcal"`
	Ingredients []CatalogIngredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
}

func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Catalog struct {
	Recipes []Recipe `json:"recipes"`

	// Store list in preference order; ties in price lookups break on
	// this order.
	Stores       []string                      `json:"stores"`
	PriceBook    map[string]map[string]float64 `json:"price_book"`
	DefaultPrice map[string]float64            `json:"default_price"`

	// Broad avoidance category -> concrete terms.
	AvoidSynonyms map[string][]string `json:"avoid_synonyms"`

	// Title fragment -> shopping list, for meals without stored items.
	FallbackIngredients map[string][]string `json:"fallback_ingredients"`

	// Rotating titles used to seed an empty grocery-sync window.
	DefaultPairs []string `json:"default_pairs"`
}

var bank = defaultCatalog()

// Bank returns the active catalog. Read-only at runtime.
func Bank() *Catalog { return bank }

// LoadCatalog replaces the built-in tables from a JSON file. Call at
// startup only; the bank is not safe to swap under running requests.
func LoadCatalog(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Recipes) == 0 || len(c.Stores) == 0 {
		return fmt.Errorf("catalog %s missing recipes or stores", path)
	}
	bank = &c
	return nil
}

var nonName = regexp.MustCompile(`[^a-z0-9\s]`)

// NormalizeName lowercases and strips punctuation so "Lean Beef + Veg"
// and price-book keys compare cleanly.
func NormalizeName(s string) string {
	return strings.TrimSpace(nonName.ReplaceAllString(strings.ToLower(s), ""))
}

func (c *Catalog) RecipeByTitle(title string) *Recipe {
	for i := range c.Recipes {
		if c.Recipes[i].Title == title {
			return &c.Recipes[i]
		}
	}
	return nil
}

func (c *Catalog) KcalForTitle(title string) int {
	t := NormalizeName(title)
	for _, r := range c.Recipes {
		if strings.Contains(t, NormalizeName(r.Title)) && r.Kcal > 0 {
			return r.Kcal
		}
	}
	return 500
}

func (c *Catalog) FallbackIngredientsForTitle(title string) []string {
	t := NormalizeName(title)
	for key, items := range c.FallbackIngredients {
		if strings.Contains(t, key) {
			return append([]string(nil), items...)
		}
	}
	return []string{"eggs", "spinach"}
}

func (c *Catalog) PricesForItem(name string) map[string]float64 {
	if m, ok := c.PriceBook[NormalizeName(name)]; ok {
		return m
	}
	return c.DefaultPrice
}

func defaultCatalog() *Catalog {
	return &Catalog{
		Recipes: []Recipe{
			{
				Title: "Grilled Chicken Salad",
				Tags:  []string{"low_carb", "diabetic", "gluten_free"},
				Kcal:  520,
				Ingredients: []CatalogIngredient{
					{Item: "chicken breast", Qty: 6, Unit: "oz"},
					{Item: "mixed greens", Qty: 3, Unit: "cups"},
					{Item: "olive oil", Qty: 1, Unit: "tbsp"},
					{Item: "balsamic vinegar", Qty: 1, Unit: "tbsp"},
					{Item: "avocado", Qty: 0.5, Unit: "each"},
				},
				Steps: []string{
					"Season chicken with salt/pepper; grill or pan-sear 3-4 min/side.",
					"Toss greens with olive oil and balsamic; slice avocado.",
					"Slice chicken; plate over greens with avocado.",
				},
			},
			{
				Title: "Salmon and Broccoli",
				Tags:  []string{"low_carb", "diabetic", "pescatarian", "gluten_free"},
				Kcal:  550,
				Ingredients: []CatalogIngredient{
					{Item: "salmon", Qty: 6, Unit: "oz"},
					{Item: "broccoli florets", Qty: 2, Unit: "cups"},
					{Item: "olive oil", Qty: 1, Unit: "tbsp"},
					{Item: "lemon", Qty: 0.5, Unit: "each"},
				},
				Steps: []string{
					"Roast salmon at 400F for 10-12 min; salt/pepper to taste.",
					"Steam or roast broccoli; drizzle with olive oil and lemon.",
				},
			},
			{
				Title: "Greek Yogurt Bowl",
				Tags:  []string{"vegetarian"},
				Kcal:  380,
				Ingredients: []CatalogIngredient{
					{Item: "Greek yogurt", Qty: 1, Unit: "cup"},
					{Item: "oats", Qty: 0.25, Unit: "cup"},
					{Item: "berries", Qty: 0.5, Unit: "cup"},
					{Item: "honey", Qty: 1, Unit: "tsp"},
				},
				Steps: []string{
					"Mix yogurt with oats; top with berries and drizzle of honey.",
				},
			},
			{
				Title: "Eggs and Spinach",
				Tags:  []string{"low_carb", "diabetic", "vegetarian", "gluten_free"},
				Kcal:  410,
				Ingredients: []CatalogIngredient{
					{Item: "eggs", Qty: 3, Unit: "each"},
					{Item: "spinach", Qty: 2, Unit: "cups"},
					{Item: "olive oil", Qty: 1, Unit: "tsp"},
				},
				Steps: []string{
					"Saute spinach with olive oil until wilted.",
					"Scramble eggs; fold in spinach; season to taste.",
				},
			},
			{
				Title: "Turkey Lettuce Wraps",
				Tags:  []string{"low_carb", "diabetic", "gluten_free"},
				Kcal:  540,
				Ingredients: []CatalogIngredient{
					{Item: "ground turkey", Qty: 6, Unit: "oz"},
					{Item: "romaine leaves", Qty: 4, Unit: "each"},
					{Item: "soy sauce or tamari", Qty: 1, Unit: "tbsp"},
				},
				Steps: []string{
					"Brown turkey; season with soy/tamari.",
					"Spoon into lettuce leaves; add optional veggies/sauce.",
				},
			},
			{
				Title: "Tofu Stir-Fry",
				Tags:  []string{"vegetarian"},
				Kcal:  480,
				Ingredients: []CatalogIngredient{
					{Item: "firm tofu", Qty: 6, Unit: "oz"},
					{Item: "mixed veg", Qty: 2, Unit: "cups"},
					{Item: "stir-fry sauce", Qty: 2, Unit: "tbsp"},
				},
				Steps: []string{
					"Pan-sear tofu cubes; add veg; stir-fry with sauce 3-4 min.",
				},
			},
			{
				Title: "Quinoa Veggie Bowl",
				Tags:  []string{"vegetarian"},
				Kcal:  520,
				Ingredients: []CatalogIngredient{
					{Item: "quinoa (cooked)", Qty: 1, Unit: "cup"},
					{Item: "roasted veg", Qty: 1, Unit: "cup"},
					{Item: "olive oil", Qty: 1, Unit: "tbsp"},
				},
				Steps: []string{
					"Combine quinoa with roasted veg; drizzle olive oil; season.",
				},
			},
			{
				Title: "Lean Beef + Veg",
				Tags:  []string{"low_carb", "gluten_free"},
				Kcal:  560,
				Ingredients: []CatalogIngredient{
					{Item: "lean ground beef", Qty: 6, Unit: "oz"},
					{Item: "mixed veg", Qty: 2, Unit: "cups"},
				},
				Steps: []string{
					"Brown beef; drain; saute veg; combine and season.",
				},
			},
		},
		Stores: []string{"ALDI", "WALMART", "COSTCO"},
		PriceBook: map[string]map[string]float64{
			"chicken breast": {"ALDI": 2.49, "WALMART": 2.84, "COSTCO": 2.39},
			"salmon":         {"ALDI": 9.99, "WALMART": 10.49, "COSTCO": 9.59},
			"eggs":           {"ALDI": 3.19, "WALMART": 3.49, "COSTCO": 3.09},
			"broccoli":       {"ALDI": 1.69, "WALMART": 1.79, "COSTCO": 1.49},
			"spinach":        {"ALDI": 1.89, "WALMART": 1.98, "COSTCO": 1.69},
			"olive oil":      {"ALDI": 5.49, "WALMART": 5.99, "COSTCO": 5.29},
			"greek yogurt":   {"ALDI": 4.19, "WALMART": 4.39, "COSTCO": 3.99},
			"oats":           {"ALDI": 2.29, "WALMART": 2.39, "COSTCO": 2.09},
			"avocado":        {"ALDI": 0.89, "WALMART": 0.98, "COSTCO": 0.79},
		},
		DefaultPrice: map[string]float64{"ALDI": 2.00, "WALMART": 2.10, "COSTCO": 1.95},
		AvoidSynonyms: map[string][]string{
			"seafood":   {"fish", "salmon", "tuna", "shrimp", "crab", "lobster", "scallop"},
			"shellfish": {"shrimp", "crab", "lobster", "scallop"},
			"fish":      {"fish", "salmon", "tuna"},
			"dairy":     {"dairy", "milk", "cheese", "yogurt", "cream"},
			"eggs":      {"egg", "eggs"},
			"onions":    {"onion", "onions", "scallion", "scallions", "green onion"},
			"scallions": {"scallion", "scallions", "green onion"},
			"mushrooms": {"mushroom", "mushrooms"},
			"nuts":      {"nut", "nuts", "peanuts", "almonds", "walnuts", "cashews", "tree nuts"},
			"gluten":    {"gluten", "wheat", "bread", "pasta"},
			"beef":      {"beef"},
			"pork":      {"pork"},
			"chicken":   {"chicken"},
			"turkey":    {"turkey"},
		},
		FallbackIngredients: map[string][]string{
			"grilled chicken salad": {"chicken breast", "spinach", "olive oil", "avocado"},
			"salmon and broccoli":   {"salmon", "broccoli", "olive oil"},
			"greek yogurt bowl":     {"greek yogurt", "oats"},
			"eggs and spinach":      {"eggs", "spinach", "olive oil"},
		},
		DefaultPairs: []string{
			"Grilled Chicken Salad",
			"Salmon and Broccoli",
			"Greek Yogurt Bowl",
			"Eggs and Spinach",
		},
	}
}
