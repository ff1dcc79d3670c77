package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"
)

// External plan generation. Results are an explicit two-variant type:
// either Generated carries a plan, or Reason says why the generator
// was unavailable. Failures never propagate to the caller; the plan
// builder falls through to the heuristic path and the reason is only
// logged.

type MealPlanRequest struct {
	Start         time.Time
	Days          int
	MealsPerDay   int
	Times         []string
	Avoids        []string
	CalorieTarget *int
	Intake        *models.Intake
}

type MealPlanResult struct {
	Plan   *PlanDoc
	Reason string // set when Plan is nil
}

func (r MealPlanResult) Generated() bool { return r.Plan != nil }

type WorkoutPlanRequest struct {
	Start     time.Time
	Days      int
	PerWeek   int
	Minutes   int
	Equipment Equipment
	Intake    *models.Intake
}

type WorkoutPlanResult struct {
	Days   []WorkoutDay
	Reason string // set when Days is nil
}

func (r WorkoutPlanResult) Generated() bool { return len(r.Days) > 0 }

type PlanGenerator interface {
	MealPlan(ctx context.Context, req MealPlanRequest) MealPlanResult
	WorkoutPlan(ctx context.Context, req WorkoutPlanRequest) WorkoutPlanResult
}

// DefaultGenerator picks the OpenAI-backed generator when enabled and
// configured, otherwise a generator that is always unavailable.
func DefaultGenerator() PlanGenerator {
	if config.App.LLMEnabled && config.App.OpenAIKey != "" {
		return newOpenAIGenerator(config.App.OpenAIKey)
	}
	return disabledGenerator{}
}

type disabledGenerator struct{}

func (disabledGenerator) MealPlan(context.Context, MealPlanRequest) MealPlanResult {
	return MealPlanResult{Reason: "generator disabled"}
}

func (disabledGenerator) WorkoutPlan(context.Context, WorkoutPlanRequest) WorkoutPlanResult {
	return WorkoutPlanResult{Reason: "generator disabled"}
}

type openAIGenerator struct {
	client *http.Client
	key    string
	model  string
}

func newOpenAIGenerator(key string) *openAIGenerator {
	return &openAIGenerator{
		client: &http.Client{Timeout: 20 * time.Second},
		key:    key,
		model:  "gpt-4o-mini",
	}
}

const mealPlanSystem = "You are a nutrition coach. Generate a compact JSON meal plan. " +
	"Respect avoid_ingredients strictly (exclude or substitute). " +
	"Match the daily calorie target within 5% across the day's meals when one is given. " +
	"Output strictly JSON with top-level key 'days' (array) where each item is {date, meals}. " +
	"Each meal is {time: 'HH:MM', title, kcal: int, ingredients: [string], steps: [string]}."

const workoutPlanSystem = "You are a strength coach. Return strictly JSON, no prose. " +
	"Schema: {\"sessions\":[{\"date\":\"YYYY-MM-DD\",\"title\":str,\"exercises\":" +
	"[{\"name\":str,\"machine\":str|null,\"sets\":int,\"reps\":int,\"rest_sec\":int}]}]}. " +
	"Respect the user's equipment, session minutes and weekly frequency; " +
	"keep each session 2-6 exercises and trim to fit minutes."

func (g *openAIGenerator) MealPlan(ctx context.Context, req MealPlanRequest) MealPlanResult {
	prefs := map[string]any{
		"start":          req.Start.Format("2006-01-02"),
		"days":           req.Days,
		"meals_per_day":  req.MealsPerDay,
		"times":          req.Times,
		"avoids":         req.Avoids,
		"calorie_target": req.CalorieTarget,
	}
	if req.Intake != nil {
		prefs["goals"] = req.Intake.Goals
		prefs["food_notes"] = req.Intake.FoodNotes
		prefs["diabetic"] = req.Intake.Diabetic
	}
	raw, err := g.completeJSON(ctx, mealPlanSystem, prefs)
	if err != nil {
		return MealPlanResult{Reason: err.Error()}
	}

	var parsed struct {
		Days []PlanDay `json:"days"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return MealPlanResult{Reason: fmt.Sprintf("malformed plan payload: %v", err)}
	}
	if len(parsed.Days) == 0 {
		return MealPlanResult{Reason: "empty plan payload"}
	}
	end := req.Start.AddDate(0, 0, req.Days-1)
	doc := &PlanDoc{
		Label: "Auto Plan",
		Start: req.Start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
		Window: PlanWindow{
			Start: req.Start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		},
		Days: parsed.Days,
	}
	return MealPlanResult{Plan: doc}
}

func (g *openAIGenerator) WorkoutPlan(ctx context.Context, req WorkoutPlanRequest) WorkoutPlanResult {
	prefs := map[string]any{
		"start":             req.Start.Format("2006-01-02"),
		"days":              req.Days,
		"sessions_per_week": req.PerWeek,
		"session_minutes":   req.Minutes,
		"equipment":         req.Equipment,
	}
	if req.Intake != nil {
		prefs["gym"] = req.Intake.Gym
		prefs["notes"] = req.Intake.WorkoutNotes
		prefs["goals"] = req.Intake.Goals
		prefs["preferred_time"] = req.Intake.WorkoutTime
	}
	raw, err := g.completeJSON(ctx, workoutPlanSystem, prefs)
	if err != nil {
		return WorkoutPlanResult{Reason: err.Error()}
	}

	var parsed struct {
		Sessions []WorkoutDay `json:"sessions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return WorkoutPlanResult{Reason: fmt.Sprintf("malformed workout payload: %v", err)}
	}
	if len(parsed.Sessions) == 0 {
		return WorkoutPlanResult{Reason: "empty workout payload"}
	}
	return WorkoutPlanResult{Days: parsed.Sessions}
}

// completeJSON runs a chat completion in JSON mode and returns the
// raw message content.
func (g *openAIGenerator) completeJSON(ctx context.Context, system string, prefs map[string]any) ([]byte, error) {
	userMsg, _ := json.Marshal(prefs)
	body, _ := json.Marshal(map[string]any{
		"model":           g.model,
		"temperature":     0.3,
		"response_format": map[string]string{"type": "json_object"},
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": "Preferences: " + string(userMsg)},
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generator status %d", resp.StatusCode)
	}
	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty generator response")
	}
	utils.Log.Debug("generator responded", "model", g.model)
	return []byte(out.Choices[0].Message.Content), nil
}
