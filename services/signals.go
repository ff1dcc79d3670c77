package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DragianXOG/diet-app/models"
)

// Lexical signal extraction: keyword scans over the user's free-text
// notes and goals. Absent or garbled text just yields all-false
// signals; nothing here returns an error.

type Signals struct {
	LowCarb    bool // keto / low carb phrasing
	TwoMealIF  bool // intermittent fasting, 2 meals/day
	Aggressive bool // "rapid"/"aggressive" pace language
}

func ExtractSignals(notes string) Signals {
	l := strings.ToLower(notes)
	return Signals{
		LowCarb:    containsAny(l, "keto", "low carb", "lower carb"),
		TwoMealIF:  containsAny(l, "if 2/day", "2-meal", "two meals", "16:8"),
		Aggressive: containsAny(l, "rapid", "aggressive", "very fast"),
	}
}

func containsAny(s string, keys ...string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// IntakeNotes concatenates every free-text field the extractors scan.
func IntakeNotes(intake *models.Intake) string {
	if intake == nil {
		return ""
	}
	return intake.FoodNotes + " " + intake.WorkoutNotes + " " + intake.Goals
}

var (
	mealsPerDayRe = regexp.MustCompile(`(\d+)\s*(?:-\s*(\d+))?\s*meals?\s*(?:/\s*day)?`)
	lossRateRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:lb|pounds?)\s*(?:per\s*week|/\s*week)`)
	loseOverRe    = regexp.MustCompile(`lose\s+(\d+(?:\.\d+)?)\s*(?:lb|pounds?)\s*(?:in|over)\s+(\d+)\s*(?:weeks?|wks?)`)
	sessionsRe    = regexp.MustCompile(`(\d+)\s*(?:-\s*(\d+))?\s*(?:days|sessions)\s*(?:/\s*week)?`)
	minutesRe     = regexp.MustCompile(`(\d+)\s*min`)
)

// ParseMealsPerDay reads "3 meals/day" or a "2-3 meals" range (higher
// bound wins) out of notes, clamped to [1,8].
func ParseMealsPerDay(notes string) (int, bool) {
	m := mealsPerDayRe.FindStringSubmatch(strings.ToLower(notes))
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	if m[2] != "" {
		if b, _ := strconv.Atoi(m[2]); b > n {
			n = b
		}
	}
	return clampInt(n, 1, 8), true
}

// ParseLossPerWeek reads a stated rate ("1.5 lb per week") or a total
// over a horizon ("lose 10 lb in 8 weeks") and returns lb/week.
func ParseLossPerWeek(text string) (float64, bool) {
	t := strings.ToLower(text)
	if m := lossRateRe.FindStringSubmatch(t); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			return v, true
		}
	}
	if m := loseOverRe.FindStringSubmatch(t); m != nil {
		total, err1 := strconv.ParseFloat(m[1], 64)
		weeks, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil && weeks > 0 {
			return total / weeks, true
		}
	}
	return 0, false
}

// ParseSessionsPerWeek reads "4 days/week" or "3-5 sessions" (higher
// bound wins), clamped to [1,7].
func ParseSessionsPerWeek(notes string) (int, bool) {
	m := sessionsRe.FindStringSubmatch(strings.ToLower(notes))
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	if m[2] != "" {
		if b, _ := strconv.Atoi(m[2]); b > n {
			n = b
		}
	}
	return clampInt(n, 1, 7), true
}

// ParseSessionMinutes reads "45 min", clamped to [15,120].
func ParseSessionMinutes(notes string) (int, bool) {
	m := minutesRe.FindStringSubmatch(strings.ToLower(notes))
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return clampInt(n, 15, 120), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
