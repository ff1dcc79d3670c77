package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DragianXOG/diet-app/models"

	"gorm.io/gorm"
)

func TestWorkoutGenerateHeuristic(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "workout@test.dev")
	seedIntake(t, db, &models.Intake{
		UserID: u.ID, WorkoutDaysPerWeek: 3, WorkoutSessionMin: 45,
		Gym: "Planet Fitness",
	})

	svc := NewWorkoutService(fakeGenerator{})
	doc, err := svc.Generate(context.Background(), newTestScope(t, db, u.ID),
		WorkoutGenerateRequest{Days: 7, Persist: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Days) != 3 {
		t.Fatalf("sessions = %d, want 3", len(doc.Days))
	}
	if doc.Created != 3 {
		t.Errorf("created = %d, want 3", doc.Created)
	}

	sessions, err := svc.List(newTestScope(t, db, u.ID), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 3 {
		t.Fatalf("persisted sessions = %d, want 3", len(sessions))
	}
	if sessions[0].Location != "Planet Fitness" {
		t.Errorf("location = %q", sessions[0].Location)
	}
	if len(sessions[0].Exercises) == 0 {
		t.Fatal("sessions should carry exercises")
	}
	for i, ex := range sessions[0].Exercises {
		if ex.OrderIndex != i {
			t.Errorf("exercise %d has order_index %d", i, ex.OrderIndex)
		}
	}
}

func TestWorkoutGenerateRejectsBadDays(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "workout-days@test.dev")
	svc := NewWorkoutService(fakeGenerator{})
	if _, err := svc.Generate(context.Background(), newTestScope(t, db, u.ID),
		WorkoutGenerateRequest{Days: 0}); !errors.Is(err, ErrInvalidDays) {
		t.Errorf("err = %v, want ErrInvalidDays", err)
	}
}

func TestUpdateExercise(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "patch@test.dev")
	other := seedUser(t, db, "other@test.dev")

	svc := NewWorkoutService(fakeGenerator{})
	if _, err := svc.Generate(context.Background(), newTestScope(t, db, u.ID),
		WorkoutGenerateRequest{Days: 3, Persist: true}); err != nil {
		t.Fatal(err)
	}
	var ex models.WorkoutExercise
	if err := db.First(&ex).Error; err != nil {
		t.Fatal(err)
	}

	done := true
	reps := 10
	got, err := svc.UpdateExercise(newTestScope(t, db, u.ID), ex.ID,
		ExerciseUpdate{Complete: &done, ActualReps: &reps})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Complete || got.ActualReps == nil || *got.ActualReps != 10 {
		t.Errorf("patch not applied: %+v", got)
	}

	// Another user must not reach this exercise.
	_, err = svc.UpdateExercise(newTestScope(t, db, other.ID), ex.ID,
		ExerciseUpdate{Complete: &done})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("cross-user patch err = %v, want record not found", err)
	}
}
