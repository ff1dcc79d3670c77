package services

import (
	"strings"

	"github.com/DragianXOG/diet-app/models"
)

// Equipment is the workout capability profile derived from notes.
type Equipment struct {
	Dumbbells bool `json:"dumbbells"`
	Bands     bool `json:"bands"`
	Smith     bool `json:"smith"`
	Machines  bool `json:"machines"`
	Home      bool `json:"home"`
	Yoga      bool `json:"yoga"`
}

func workoutNotes(intake *models.Intake) string {
	if intake == nil {
		return ""
	}
	return strings.ToLower(intake.WorkoutNotes + " " + intake.Goals)
}

func EquipmentFromNotes(intake *models.Intake) Equipment {
	txt := workoutNotes(intake)
	return Equipment{
		Dumbbells: containsAny(txt, "dumbbell", "db"),
		Bands:     strings.Contains(txt, "band"),
		Smith:     strings.Contains(txt, "smith"),
		Machines:  containsAny(txt, "machine", "gym", "planet fitness", "la fitness", "crunch"),
		Home:      strings.Contains(txt, "home"),
		Yoga:      strings.Contains(txt, "yoga"),
	}
}

// SessionsPerWeek: explicit intake field, then notes, then 4.
func SessionsPerWeek(intake *models.Intake) int {
	if intake != nil && intake.WorkoutDaysPerWeek > 0 {
		return clampInt(intake.WorkoutDaysPerWeek, 1, 7)
	}
	if n, ok := ParseSessionsPerWeek(workoutNotes(intake)); ok {
		return n
	}
	return 4
}

// SessionMinutes: explicit intake field, then notes, then 45.
func SessionMinutes(intake *models.Intake) int {
	if intake != nil && intake.WorkoutSessionMin > 0 {
		return clampInt(intake.WorkoutSessionMin, 15, 120)
	}
	if n, ok := ParseSessionMinutes(workoutNotes(intake)); ok {
		return n
	}
	return 45
}
