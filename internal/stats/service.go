package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=stats_mocks_test.go -package=stats_test

// Aggregate is a record count and calorie sum over a date window.
type Aggregate struct {
	Count    int
	Calories float64
}

// Window is a half-open [From, To) date filter; nil bounds are open.
type Window struct {
	From *time.Time
	To   *time.Time
}

type aggregator interface {
	Workouts(ctx context.Context, userID string, window Window) (Aggregate, error)
	Meals(ctx context.Context, userID string, window Window) (Aggregate, error)
}

type Today struct {
	Workouts           int     `json:"workouts"`
	Meals              int     `json:"meals"`
	CaloriesConsumed   float64 `json:"calories_consumed"`
	CaloriesBurned     float64 `json:"calories_burned"`
	AvgCaloriesPerMeal int     `json:"avg_calories_per_meal"`
}

type Week struct {
	Workouts int `json:"workouts"`
}

type AllTime struct {
	TotalWorkouts int `json:"total_workouts"`
	TotalMeals    int `json:"total_meals"`
}

type Detailed struct {
	Today   Today   `json:"today"`
	Week    Week    `json:"week"`
	AllTime AllTime `json:"all_time"`
}

type Service struct {
	aggregator aggregator
}

func NewService(aggregator aggregator) *Service {
	return &Service{
		aggregator: aggregator,
	}
}

// Detailed computes today's, this week's (the 7 days before today plus today)
// and all-time figures for the user. The queries do not share a snapshot.
func (s *Service) Detailed(ctx context.Context, userID string, now time.Time) (_ Detailed, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.detailed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	todayStart := pkg.StartOfDay(now)
	todayEnd := todayStart.Add(24 * time.Hour)
	weekStart := todayStart.Add(-7 * 24 * time.Hour)

	today := Window{From: &todayStart, To: &todayEnd}
	week := Window{From: &weekStart, To: &todayEnd}

	workoutsToday, err := s.aggregator.Workouts(ctx, userID, today)
	if err != nil {
		return Detailed{}, fmt.Errorf("today's workouts: %w", err)
	}
	workoutsWeek, err := s.aggregator.Workouts(ctx, userID, week)
	if err != nil {
		return Detailed{}, fmt.Errorf("week workouts: %w", err)
	}
	workoutsAll, err := s.aggregator.Workouts(ctx, userID, Window{})
	if err != nil {
		return Detailed{}, fmt.Errorf("all workouts: %w", err)
	}
	mealsToday, err := s.aggregator.Meals(ctx, userID, today)
	if err != nil {
		return Detailed{}, fmt.Errorf("today's meals: %w", err)
	}
	mealsAll, err := s.aggregator.Meals(ctx, userID, Window{})
	if err != nil {
		return Detailed{}, fmt.Errorf("all meals: %w", err)
	}

	var avgPerMeal int
	if mealsToday.Count > 0 {
		avgPerMeal = int(math.Round(mealsToday.Calories / float64(mealsToday.Count)))
	}

	return Detailed{
		Today: Today{
			Workouts:           workoutsToday.Count,
			Meals:              mealsToday.Count,
			CaloriesConsumed:   mealsToday.Calories,
			CaloriesBurned:     workoutsToday.Calories,
			AvgCaloriesPerMeal: avgPerMeal,
		},
		Week: Week{
			Workouts: workoutsWeek.Count,
		},
		AllTime: AllTime{
			TotalWorkouts: workoutsAll.Count,
			TotalMeals:    mealsAll.Count,
		},
	}, nil
}
