package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var Types = map[string]bool{
	"strength":    true,
	"cardio":      true,
	"flexibility": true,
	"sports":      true,
	"other":       true,
}

type Exercise struct {
	Name     string   `json:"name"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight"`
	Duration *int     `json:"duration"`
}

type Workout struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title"`
	Type           string     `json:"type"`
	Exercises      []Exercise `json:"exercises"`
	Duration       int        `json:"duration"`
	CaloriesBurned int        `json:"calories_burned"`
	Notes          *string    `json:"notes"`
	Date           time.Time  `json:"date"`
	CreatedAt      time.Time  `json:"created_at"`
}

type NewWorkout struct {
	Title          string     `json:"title"`
	Type           string     `json:"type"`
	Exercises      []Exercise `json:"exercises"`
	Duration       int        `json:"duration"`
	CaloriesBurned int        `json:"calories_burned"`
	Notes          *string    `json:"notes"`
	// Date is ISO-8601 or YYYY-MM-DD, now when empty.
	Date string `json:"date"`
}

func (nw NewWorkout) Validate() error {
	if strings.TrimSpace(nw.Title) == "" {
		return errors.New("title is required")
	}
	if !Types[nw.Type] {
		return fmt.Errorf("invalid workout type: %q", nw.Type)
	}
	if nw.Duration < 0 || nw.CaloriesBurned < 0 {
		return errors.New("duration and calories burned cannot be negative")
	}
	return validateExercises(nw.Exercises)
}

// Update carries only the fields a client sent.
type Update struct {
	Title          *string     `json:"title"`
	Type           *string     `json:"type"`
	Exercises      *[]Exercise `json:"exercises"`
	Duration       *int        `json:"duration"`
	CaloriesBurned *int        `json:"calories_burned"`
	Notes          *string     `json:"notes"`
}

func (u Update) IsEmpty() bool {
	return u.Title == nil &&
		u.Type == nil &&
		u.Exercises == nil &&
		u.Duration == nil &&
		u.CaloriesBurned == nil &&
		u.Notes == nil
}

func (u Update) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if u.Type != nil && !Types[*u.Type] {
		return fmt.Errorf("invalid workout type: %q", *u.Type)
	}
	if u.Duration != nil && *u.Duration < 0 {
		return errors.New("duration cannot be negative")
	}
	if u.CaloriesBurned != nil && *u.CaloriesBurned < 0 {
		return errors.New("calories burned cannot be negative")
	}
	if u.Exercises != nil {
		return validateExercises(*u.Exercises)
	}
	return nil
}

func validateExercises(exercises []Exercise) error {
	for i, e := range exercises {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("exercise %d: name is required", i)
		}
		if e.Sets < 0 || e.Reps < 0 {
			return fmt.Errorf("exercise %d: sets and reps cannot be negative", i)
		}
	}
	return nil
}
