package services

import (
	"testing"

	"github.com/DragianXOG/diet-app/models"
)

func TestExtractSignals(t *testing.T) {
	cases := []struct {
		notes string
		want  Signals
	}{
		{"", Signals{}},
		{"I want to go keto", Signals{LowCarb: true}},
		{"prefer Low Carb meals", Signals{LowCarb: true}},
		{"16:8 fasting works for me", Signals{TwoMealIF: true}},
		{"two meals a day please", Signals{TwoMealIF: true}},
		{"lose weight rapidly", Signals{Aggressive: true}},
		{"keto and aggressive cut", Signals{LowCarb: true, Aggressive: true}},
	}
	for _, tc := range cases {
		if got := ExtractSignals(tc.notes); got != tc.want {
			t.Errorf("ExtractSignals(%q) = %+v, want %+v", tc.notes, got, tc.want)
		}
	}
}

func TestParseMealsPerDay(t *testing.T) {
	cases := []struct {
		notes string
		want  int
		ok    bool
	}{
		{"4 meals per day", 4, true},
		{"2-3 meals a day", 3, true},
		{"I eat 12 meals per day", 8, true}, // clamped
		{"no preference", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseMealsPerDay(tc.notes)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseMealsPerDay(%q) = (%d,%v), want (%d,%v)", tc.notes, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseLossPerWeek(t *testing.T) {
	got, ok := ParseLossPerWeek("I want to lose 1.5 lb per week")
	if !ok || got != 1.5 {
		t.Fatalf("got (%v,%v), want (1.5,true)", got, ok)
	}
	if _, ok := ParseLossPerWeek("lose weight somehow"); ok {
		t.Fatalf("expected no rate parsed")
	}
}

func TestParseSessionsAndMinutes(t *testing.T) {
	if n, ok := ParseSessionsPerWeek("train 5 days per week"); !ok || n != 5 {
		t.Fatalf("sessions = (%d,%v), want (5,true)", n, ok)
	}
	if n, ok := ParseSessionsPerWeek("train 9 days a week"); !ok || n != 7 {
		t.Fatalf("sessions clamp = (%d,%v), want (7,true)", n, ok)
	}
	if m, ok := ParseSessionMinutes("30 minute sessions"); !ok || m != 30 {
		t.Fatalf("minutes = (%d,%v), want (30,true)", m, ok)
	}
	if m, ok := ParseSessionMinutes("10 min workouts"); !ok || m != 15 {
		t.Fatalf("minutes clamp = (%d,%v), want (15,true)", m, ok)
	}
}

func TestIntakeNotesJoinsFields(t *testing.T) {
	intake := &models.Intake{FoodNotes: "keto", WorkoutNotes: "home only", Goals: "lose 10 lb"}
	notes := IntakeNotes(intake)
	for _, want := range []string{"keto", "home only", "lose 10 lb"} {
		if !containsAny(notes, want) {
			t.Errorf("notes %q missing %q", notes, want)
		}
	}
	if IntakeNotes(nil) != "" {
		t.Errorf("nil intake should produce empty notes")
	}
}
