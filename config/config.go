package config

import (
	"fmt"
	"log"
	"os"

	"github.com/DragianXOG/diet-app/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Settings holds the non-DB knobs read once at startup.
type Settings struct {
	DataDir     string // plan snapshots + price fallback files
	CatalogPath string // optional JSON catalog override
	LLMEnabled  bool
	OpenAIKey   string
	AdvisoryEmail bool
}

var App Settings

func loadSettings() {
	App = Settings{
		DataDir:     getenv("DATA_DIR", "data"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		LLMEnabled:  os.Getenv("LLM_ENABLED") == "true",
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		AdvisoryEmail: os.Getenv("ADVISORY_EMAIL_ENABLED") == "true",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file, using process environment")
	}
	loadSettings()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	ResolveSchemaCaps(DB)
}

// Migrate creates/updates every table. Shared with dietctl and tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Intake{},
		&models.Meal{},
		&models.MealItem{},
		&models.GroceryItem{},
		&models.WorkoutSession{},
		&models.WorkoutExercise{},
		&models.WeightLog{},
		&models.GlucoseLog{},
		&models.MealCheck{},
		&models.Alert{},
	)
}
