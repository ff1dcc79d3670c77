package services

import (
	"context"
	"time"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

type WorkoutGenerateRequest struct {
	Days    int  `json:"days"`
	Persist bool `json:"persist"`
}

type WorkoutDay struct {
	Date      string         `json:"date"`
	Title     string         `json:"title"`
	Exercises []ExerciseSpec `json:"exercises"`
}

type WorkoutPlanDoc struct {
	Created int          `json:"created"`
	Start   string       `json:"start"`
	Days    []WorkoutDay `json:"days"`
}

type WorkoutService struct {
	gen PlanGenerator
}

func NewWorkoutService(gen PlanGenerator) *WorkoutService {
	return &WorkoutService{gen: gen}
}

// Generate schedules sessions across the window (evenly spaced when
// sessions/week is below the day count), fills each from the 5-way
// template rotation and persists session + ordered exercise rows.
func (s *WorkoutService) Generate(ctx context.Context, scope *config.UserScope, req WorkoutGenerateRequest) (*WorkoutPlanDoc, error) {
	if req.Days <= 0 || req.Days > 31 {
		return nil, ErrInvalidDays
	}
	start := today()
	doc := &WorkoutPlanDoc{Start: start.Format("2006-01-02")}

	err := scope.Run(func(tx *gorm.DB) error {
		intake, err := loadIntake(tx, scope.UserID())
		if err != nil {
			return err
		}
		eq := EquipmentFromNotes(intake)
		perWeek := SessionsPerWeek(intake)
		minutes := SessionMinutes(intake)

		res := s.gen.WorkoutPlan(ctx, WorkoutPlanRequest{
			Start:     start,
			Days:      req.Days,
			PerWeek:   perWeek,
			Minutes:   minutes,
			Equipment: eq,
			Intake:    intake,
		})
		if res.Generated() {
			doc.Days = res.Days
		} else {
			utils.Log.Debug("workout generator unavailable", "reason", res.Reason)
			for _, i := range SessionDayIndices(req.Days, perWeek) {
				d := start.AddDate(0, 0, i)
				doc.Days = append(doc.Days, WorkoutDay{
					Date:      d.Format("2006-01-02"),
					Title:     SessionTitle(i),
					Exercises: DayTemplate(eq, i, minutes),
				})
			}
		}

		if !req.Persist {
			return nil
		}
		clock := "06:00"
		if intake != nil && intake.WorkoutTime != "" {
			clock = intake.WorkoutTime
		}
		location := ""
		if intake != nil {
			location = intake.Gym
			if location == "" && eq.Home {
				location = "Home"
			}
		}
		for _, day := range doc.Days {
			d, err := time.ParseInLocation("2006-01-02", day.Date, time.Local)
			if err != nil {
				return err
			}
			sess := models.WorkoutSession{
				UserID:   scope.UserID(),
				Date:     atClock(d, clock),
				Title:    day.Title,
				Location: location,
			}
			if err := tx.Create(&sess).Error; err != nil {
				return err
			}
			for j, e := range day.Exercises {
				we := models.WorkoutExercise{
					SessionID:    sess.ID,
					OrderIndex:   j,
					Name:         e.Name,
					Machine:      e.Machine,
					Sets:         e.Sets,
					Reps:         e.Reps,
					TargetWeight: e.TargetWeight,
					RestSec:      e.RestSec,
				}
				if err := tx.Create(&we).Error; err != nil {
					return err
				}
			}
			doc.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *WorkoutService) List(scope *config.UserScope, start, end *time.Time) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := scope.Run(func(tx *gorm.DB) error {
		q := tx.Where("user_id = ?", scope.UserID()).
			Preload("Exercises", func(db *gorm.DB) *gorm.DB {
				return db.Order("order_index")
			})
		if start != nil {
			q = q.Where("DATE(date) >= DATE(?)", *start)
		}
		if end != nil {
			q = q.Where("DATE(date) <= DATE(?)", *end)
		}
		return q.Order("date").Find(&sessions).Error
	})
	return sessions, err
}

type ExerciseUpdate struct {
	Complete     *bool `json:"complete"`
	ActualReps   *int  `json:"actual_reps"`
	ActualWeight *int  `json:"actual_weight"`
}

// UpdateExercise patches completion tracking on one exercise. The
// ownership check goes through the parent session.
func (s *WorkoutService) UpdateExercise(scope *config.UserScope, exerciseID uint, patch ExerciseUpdate) (*models.WorkoutExercise, error) {
	var out models.WorkoutExercise
	err := scope.Run(func(tx *gorm.DB) error {
		err := tx.Joins("JOIN workout_sessions ON workout_sessions.id = workout_exercises.session_id").
			Where("workout_exercises.id = ? AND workout_sessions.user_id = ?", exerciseID, scope.UserID()).
			First(&out).Error
		if err != nil {
			return err
		}
		if patch.Complete != nil {
			out.Complete = *patch.Complete
		}
		if patch.ActualReps != nil {
			out.ActualReps = patch.ActualReps
		}
		if patch.ActualWeight != nil {
			out.ActualWeight = patch.ActualWeight
		}
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
