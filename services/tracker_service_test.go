package services

import (
	"context"
	"testing"
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
)

func TestWeightAndGlucoseLogs(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "logs@test.dev")
	scope := newTestScope(t, db, u.ID)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := AddWeightLog(scope, base.AddDate(0, 0, i), 200-i); err != nil {
			t.Fatal(err)
		}
	}
	logs, err := ListWeightLogs(scope)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 3 {
		t.Fatalf("weight logs = %d, want 3", len(logs))
	}
	if logs[0].WeightLb != 198 {
		t.Errorf("newest first: got %d, want 198", logs[0].WeightLb)
	}

	g, err := AddGlucoseLog(scope, time.Time{}, 105)
	if err != nil {
		t.Fatal(err)
	}
	if g.When.IsZero() {
		t.Error("zero timestamp should default to now")
	}
	glogs, err := ListGlucoseLogs(scope)
	if err != nil {
		t.Fatal(err)
	}
	if len(glogs) != 1 || glogs[0].MgDL != 105 {
		t.Errorf("glucose logs = %+v", glogs)
	}
}

func TestUpsertMealCheck(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "checks@test.dev")
	scope := newTestScope(t, db, u.ID)

	d := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC) // time part dropped
	check, err := UpsertMealCheck(scope, d, "Eggs and Spinach", true)
	if err != nil {
		t.Fatal(err)
	}
	if !check.Complete || check.CompletedAt == nil {
		t.Errorf("check = %+v", check)
	}

	// Same (date,title) updates in place.
	again, err := UpsertMealCheck(scope, d, "Eggs and Spinach", false)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != check.ID {
		t.Error("re-check created a second row")
	}
	if again.Complete || again.CompletedAt != nil {
		t.Errorf("uncheck should clear completion: %+v", again)
	}

	var count int64
	db.Model(&models.MealCheck{}).Where("user_id = ?", u.ID).Count(&count)
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestChecklistOverview(t *testing.T) {
	config.App.DataDir = t.TempDir()
	db := newTestDB(t)
	u := seedUser(t, db, "summary@test.dev")
	scope := newTestScope(t, db, u.ID)

	planSvc := NewPlanService(fakeGenerator{})
	if _, err := planSvc.Generate(context.Background(), scope,
		PlanGenerateRequest{Days: 2, Persist: true}); err != nil {
		t.Fatal(err)
	}
	workoutSvc := NewWorkoutService(fakeGenerator{})
	if _, err := workoutSvc.Generate(context.Background(), scope,
		WorkoutGenerateRequest{Days: 2, Persist: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := AddGrocery(scope, "eggs", 1); err != nil {
		t.Fatal(err)
	}

	start := today()
	sum, err := ChecklistOverview(scope, start, start.AddDate(0, 0, 6))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Meals.Total != 6 {
		t.Errorf("meals total = %d, want 6", sum.Meals.Total)
	}
	if sum.Meals.Complete != 0 {
		t.Errorf("meals complete = %d, want 0", sum.Meals.Complete)
	}
	if sum.Workouts.Exercises == 0 {
		t.Error("workout exercises should be counted")
	}
	if sum.Groceries.Open != 1 || sum.Groceries.Purchased != 0 {
		t.Errorf("groceries = %+v", sum.Groceries)
	}
}
