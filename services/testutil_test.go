package services

import (
	"fmt"
	"testing"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.ResolveSchemaCaps(db)
	return db
}

func newTestScope(t *testing.T, db *gorm.DB, userID uint) *config.UserScope {
	t.Helper()
	return config.NewUserScope(db, userID)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "x", FullName: "Test User"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedIntake(t *testing.T, db *gorm.DB, intake *models.Intake) *models.Intake {
	t.Helper()
	if err := db.Create(intake).Error; err != nil {
		t.Fatalf("seed intake: %v", err)
	}
	return intake
}
