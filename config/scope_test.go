package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DragianXOG/diet-app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func scopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserScopeCommitsAtDepthZero(t *testing.T) {
	db := scopeTestDB(t)
	scope := NewUserScope(db, 7)

	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Create(&models.GroceryItem{UserID: 7, Name: "outer"}).Error
	})
	if err != nil {
		t.Fatal(err)
	}

	var count int64
	db.Model(&models.GroceryItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("committed rows = %d, want 1", count)
	}
}

func TestUserScopeNestedRunsShareTransaction(t *testing.T) {
	db := scopeTestDB(t)
	scope := NewUserScope(db, 7)

	err := scope.Run(func(outer *gorm.DB) error {
		if err := outer.Create(&models.GroceryItem{UserID: 7, Name: "outer"}).Error; err != nil {
			return err
		}
		return scope.Run(func(inner *gorm.DB) error {
			if inner != outer {
				t.Error("nested Run must reuse the outer transaction")
			}
			// The outer write is visible inside the shared transaction.
			var n int64
			if err := inner.Model(&models.GroceryItem{}).Count(&n).Error; err != nil {
				return err
			}
			if n != 1 {
				t.Errorf("inner sees %d rows, want 1", n)
			}
			return inner.Create(&models.GroceryItem{UserID: 7, Name: "inner"}).Error
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	var count int64
	db.Model(&models.GroceryItem{}).Count(&count)
	if count != 2 {
		t.Fatalf("committed rows = %d, want 2", count)
	}
}

func TestUserScopeNestedErrorRollsBackEverything(t *testing.T) {
	db := scopeTestDB(t)
	scope := NewUserScope(db, 7)

	boom := errors.New("boom")
	err := scope.Run(func(outer *gorm.DB) error {
		if err := outer.Create(&models.GroceryItem{UserID: 7, Name: "outer"}).Error; err != nil {
			return err
		}
		if err := scope.Run(func(inner *gorm.DB) error { return boom }); err != nil {
			return err
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	var count int64
	db.Model(&models.GroceryItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("rows after rollback = %d, want 0", count)
	}
}

func TestUserScopeReusableAfterCompletion(t *testing.T) {
	db := scopeTestDB(t)
	scope := NewUserScope(db, 7)

	if err := scope.Run(func(tx *gorm.DB) error { return errors.New("first fails") }); err == nil {
		t.Fatal("expected error")
	}
	// A failed unit of work must not poison the next one.
	err := scope.Run(func(tx *gorm.DB) error {
		return tx.Create(&models.GroceryItem{UserID: 7, Name: "second"}).Error
	})
	if err != nil {
		t.Fatal(err)
	}

	var count int64
	db.Model(&models.GroceryItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}
