//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/workouts"
)

func (s *IntegrationTestSuite) TestWorkouts_CRUD() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)
	other := s.registerUser(ctx)

	var created workouts.Workout
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/workouts", user.token, map[string]any{
		"title":           "Leg day",
		"type":            "strength",
		"duration":        60,
		"calories_burned": 450,
		"exercises": []map[string]any{
			{"name": "Squat", "sets": 5, "reps": 5, "weight": 100},
		},
	}), http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	require.Len(t, created.Exercises, 1)
	assert.Equal(t, "Squat", created.Exercises[0].Name)

	var listed []workouts.Workout
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/workouts", user.token, nil), http.StatusOK, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// owned by someone else
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/workouts/"+created.ID, other.token, nil), http.StatusNotFound, nil)

	var updated workouts.Workout
	s.decodeResponse(s.doRequest(ctx, http.MethodPut, "/workouts/"+created.ID, user.token, map[string]any{
		"duration": 75,
	}), http.StatusOK, &updated)
	assert.Equal(t, 75, updated.Duration)
	assert.Equal(t, "Leg day", updated.Title)

	s.decodeResponse(s.doRequest(ctx, http.MethodDelete, "/workouts/"+created.ID, other.token, nil), http.StatusNotFound, nil)
	s.decodeResponse(s.doRequest(ctx, http.MethodDelete, "/workouts/"+created.ID, user.token, nil), http.StatusOK, nil)
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/workouts/"+created.ID, user.token, nil), http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestMeals_TotalsAndDateFilter() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)

	var created meals.Meal
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/meals", user.token, map[string]any{
		"type": "lunch",
		"date": "2024-03-14T12:30:00Z",
		"foods": []map[string]any{
			{"name": "Rice", "quantity": 200, "unit": "g", "calories": 260, "protein": 5, "carbs": 56, "fats": 0.5},
			{"name": "Chicken", "quantity": 150, "unit": "g", "calories": 240, "protein": 45, "carbs": 0, "fats": 5},
		},
	}), http.StatusCreated, &created)
	assert.Equal(t, float64(500), created.TotalCalories)
	assert.Equal(t, float64(50), created.TotalProtein)

	var inRange []meals.Meal
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/meals?start_date=2024-03-14&end_date=2024-03-14", user.token, nil), http.StatusOK, &inRange)
	require.Len(t, inRange, 1)

	var outOfRange []meals.Meal
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/meals?start_date=2024-03-15", user.token, nil), http.StatusOK, &outOfRange)
	assert.Empty(t, outOfRange)

	var updated meals.Meal
	s.decodeResponse(s.doRequest(ctx, http.MethodPut, "/meals/"+created.ID, user.token, map[string]any{
		"foods": []map[string]any{
			{"name": "Salad", "quantity": 1, "unit": "bowl", "calories": 120, "protein": 3, "carbs": 10, "fats": 7},
		},
	}), http.StatusOK, &updated)
	assert.Equal(t, float64(120), updated.TotalCalories)
	assert.Equal(t, "lunch", updated.Type)

	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/meals?start_date=not-a-date", user.token, nil), http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestWater_TodayStatsReset() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)

	for _, amount := range []float64{0.5, 0.25, 1} {
		var added water.Response
		s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/water", user.token, map[string]any{"amount": amount}), http.StatusCreated, &added)
		require.True(t, added.Success)
		require.NotNil(t, added.Data)
	}

	for _, badAmount := range []float64{0, -1, 10.5} {
		s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/water", user.token, map[string]any{"amount": badAmount}), http.StatusBadRequest, nil)
	}

	var today water.ListResponse
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/water/today", user.token, nil), http.StatusOK, &today)
	assert.Len(t, today.Data, 3)
	assert.InDelta(t, 1.75, today.Total, 0.0001)
	require.NotNil(t, today.Goal)
	assert.Equal(t, 3.0, *today.Goal)

	var statsResp water.StatsResponse
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/water/stats", user.token, nil), http.StatusOK, &statsResp)
	assert.Equal(t, 3, statsResp.Stats.Count)
	assert.InDelta(t, 1.75, statsResp.Stats.Total, 0.0001)

	var reset water.ResetResponse
	s.decodeResponse(s.doRequest(ctx, http.MethodDelete, "/water/today/reset", user.token, nil), http.StatusOK, &reset)
	assert.Equal(t, int64(3), reset.DeletedCount)

	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/water/today", user.token, nil), http.StatusOK, &today)
	assert.Empty(t, today.Data)
}

func (s *IntegrationTestSuite) TestStats_Detailed() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)
	now := time.Now().UTC()

	for _, calories := range []float64{400, 600} {
		s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/meals", user.token, map[string]any{
			"type":  "snack",
			"date":  now.Format(time.RFC3339),
			"foods": []map[string]any{{"name": "Food", "quantity": 1, "unit": "serving", "calories": calories}},
		}), http.StatusCreated, nil)
	}
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/workouts", user.token, map[string]any{
		"title": "Run", "type": "cardio", "duration": 30, "calories_burned": 300,
		"date": now.Format(time.RFC3339),
	}), http.StatusCreated, nil)
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/workouts", user.token, map[string]any{
		"title": "Old run", "type": "cardio", "duration": 30, "calories_burned": 300,
		"date": now.AddDate(0, 0, -30).Format(time.RFC3339),
	}), http.StatusCreated, nil)

	var detailed stats.Detailed
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/users/stats/detailed", user.token, nil), http.StatusOK, &detailed)
	assert.Equal(t, 2, detailed.Today.Meals)
	assert.Equal(t, float64(1000), detailed.Today.CaloriesConsumed)
	assert.Equal(t, 500, detailed.Today.AvgCaloriesPerMeal)
	assert.Equal(t, 1, detailed.Today.Workouts)
	assert.Equal(t, float64(300), detailed.Today.CaloriesBurned)
	assert.Equal(t, 1, detailed.Week.Workouts)
	assert.Equal(t, 2, detailed.AllTime.TotalWorkouts)
	assert.Equal(t, 2, detailed.AllTime.TotalMeals)
}
