package services

import (
	"reflect"
	"testing"

	"github.com/DragianXOG/diet-app/models"
)

func TestRationalizeDefaults(t *testing.T) {
	r := Rationalize(nil)
	if r.DietLabel != "balanced; 3/day" {
		t.Errorf("label = %q", r.DietLabel)
	}
	if r.MealsPerDay != 3 {
		t.Errorf("meals/day = %d, want 3", r.MealsPerDay)
	}
	if !reflect.DeepEqual(r.Times, []string{"08:00", "12:00", "18:00"}) {
		t.Errorf("times = %v", r.Times)
	}
	if r.ProteinTarget != 110 || r.CarbTarget != 200 {
		t.Errorf("macros = %d/%d, want 110/200", r.ProteinTarget, r.CarbTarget)
	}
	if r.CalorieTarget != nil {
		t.Errorf("calorie target should be nil without anthropometrics")
	}
	if r.SafetyRequired || len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestRationalizeLowCarb(t *testing.T) {
	intake := &models.Intake{FoodNotes: "thinking keto"}
	r := Rationalize(intake)
	if r.DietLabel != "lower-carb; IF 16:8 (2/day)" {
		t.Errorf("label = %q", r.DietLabel)
	}
	if r.MealsPerDay != 2 {
		t.Errorf("meals/day = %d, want 2", r.MealsPerDay)
	}
	if !reflect.DeepEqual(r.Times, []string{"12:00", "18:00"}) {
		t.Errorf("times = %v", r.Times)
	}
	if r.ProteinTarget != 140 || r.CarbTarget != 120 {
		t.Errorf("macros = %d/%d, want 140/120", r.ProteinTarget, r.CarbTarget)
	}
}

func TestRationalizeReportsBMI(t *testing.T) {
	r := Rationalize(&models.Intake{Age: 40, Sex: "F", HeightIn: 64, WeightLb: 150})
	if r.BMI == nil {
		t.Fatal("expected BMI with height and weight present")
	}
	if *r.BMI != 25.7 {
		t.Errorf("bmi = %v, want 25.7", *r.BMI)
	}
	if r.BMICategory != "Overweight" {
		t.Errorf("category = %q, want Overweight", r.BMICategory)
	}

	r = Rationalize(&models.Intake{Age: 40})
	if r.BMI != nil || r.BMICategory != "" {
		t.Errorf("BMI should be absent without anthropometrics, got %v %q", r.BMI, r.BMICategory)
	}
}

func TestRationalizeIsDeterministic(t *testing.T) {
	intake := &models.Intake{
		Age: 40, Sex: "M", HeightIn: 70, WeightLb: 200,
		Goals: "lose 10 lb in 8 weeks, train 4 days/week",
	}
	first := Rationalize(intake)
	for i := 0; i < 5; i++ {
		if got := Rationalize(intake); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestRationalizeWarnings(t *testing.T) {
	r := Rationalize(&models.Intake{Goals: "lose weight rapidly"})
	if !r.SafetyRequired || len(r.Warnings) != 1 {
		t.Fatalf("want one aggressive warning, got %v", r.Warnings)
	}

	r = Rationalize(&models.Intake{Diabetic: true})
	if len(r.Warnings) != 1 {
		t.Fatalf("want diabetic warning, got %v", r.Warnings)
	}
	if r.SafetyRequired {
		t.Errorf("diabetic warning alone should not force safety")
	}

	r = Rationalize(&models.Intake{Diabetic: true, FoodNotes: "low carb"})
	if len(r.Warnings) != 0 {
		t.Errorf("diabetic + low carb should clear the warning, got %v", r.Warnings)
	}
}

func TestCalorieTargetScenario(t *testing.T) {
	intake := &models.Intake{
		Age: 30, Sex: "F", HeightIn: 65, WeightLb: 150,
		WorkoutDaysPerWeek: 3,
	}
	got := CalorieTarget(intake)
	if got == nil {
		t.Fatal("expected a target")
	}
	if *got != 1602 {
		t.Errorf("target = %d, want 1602", *got)
	}
}

func TestCalorieTargetDeficitClampAndFloor(t *testing.T) {
	// 3 lb/week asks for 1500 kcal/day; clamp holds it at 1000.
	intake := &models.Intake{
		Age: 30, Sex: "M", HeightIn: 70, WeightLb: 200,
		Goals: "lose 3 lb per week",
	}
	slow := *CalorieTarget(&models.Intake{
		Age: 30, Sex: "M", HeightIn: 70, WeightLb: 200,
		Goals: "lose 2 lb per week",
	})
	fast := *CalorieTarget(intake)
	if fast != slow {
		t.Errorf("deficit clamp: 3 lb/wk target %d != 2 lb/wk target %d", fast, slow)
	}

	// Tiny frame bottoms out at the 1200 floor.
	small := &models.Intake{Age: 60, Sex: "F", HeightIn: 58, WeightLb: 95}
	if got := *CalorieTarget(small); got != 1200 {
		t.Errorf("floor = %d, want 1200", got)
	}
}

func TestMealTimesSpacing(t *testing.T) {
	cases := []struct {
		n    int
		want []string
	}{
		{1, []string{"12:00"}},
		{2, []string{"12:00", "18:00"}},
		{3, []string{"08:00", "12:00", "18:00"}},
		{4, []string{"08:00", "12:00", "16:00", "20:00"}},
		{5, []string{"08:00", "11:00", "14:00", "17:00", "20:00"}},
	}
	for _, tc := range cases {
		if got := MealTimes(tc.n); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("MealTimes(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}
