package advisor

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/metabolic"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/plans"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	aiRouter := mainRouter.PathPrefix("/ai").Subrouter()
	aiRouter.HandleFunc("/diet-recommendations", handler.HandleDietRecommendations).Methods("POST", "OPTIONS").Name("ai-diet")
	aiRouter.HandleFunc("/workout-plan", handler.HandleWorkoutPlan).Methods("POST", "OPTIONS").Name("ai-workout-plan")
	aiRouter.HandleFunc("/predict-calories", handler.HandlePredictCalories).Methods("POST", "OPTIONS").Name("ai-predict-calories")
	aiRouter.HandleFunc("/food-database", handler.HandleFoodDatabase).Methods("GET").Name("ai-food-database")
	aiRouter.HandleFunc("/chat-with-trainer", handler.HandleChatWithTrainer).Methods("POST", "OPTIONS").Name("ai-chat")
	aiRouter.HandleFunc("/workout-calories", handler.HandleWorkoutCalories).Methods("POST", "OPTIONS").Name("ai-workout-calories")
	aiRouter.HandleFunc("/meal-calories", handler.HandleMealCalories).Methods("POST", "OPTIONS").Name("ai-meal-calories")
	aiRouter.HandleFunc("/food-recommendations", handler.HandleFoodRecommendations).Methods("GET").Name("ai-food-recommendations")

	// provider quotas are per account, keep a single client from burning them
	aiRouter.Use(middleware.RateLimit(rateLimiter, "ai", allowedPerMin, metricsManager))
}

func (handler *Handler) decodeHealthData(w http.ResponseWriter, r *http.Request) (HealthData, bool) {
	var data HealthData
	if err := pkg.DecodeJSONBody(r, &data); err != nil {
		log.Tracef("ai request, decode health data: %s", err)
		http.Error(w, "invalid health data", http.StatusBadRequest)
		return data, false
	}
	if err := data.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return data, false
	}
	return data, true
}

func (handler *Handler) HandleDietRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.diet")
	defer span.End()

	data, ok := handler.decodeHealthData(w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, handler.service.DietRecommendations(ctx, data), http.StatusOK)
}

func (handler *Handler) HandleWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.workout")
	defer span.End()

	data, ok := handler.decodeHealthData(w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, handler.service.WorkoutPlan(ctx, data), http.StatusOK)
}

func (handler *Handler) HandlePredictCalories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.predict")
	defer span.End()

	data, ok := handler.decodeHealthData(w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, handler.service.PredictCalories(ctx, data), http.StatusOK)
}

func (handler *Handler) HandleFoodDatabase(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string][]plans.FoodInfo{"foods": plans.FoodDatabase()}, http.StatusOK)
}

// HandleChatWithTrainer takes the question from the query string, or from a JSON body.
func (handler *Handler) HandleChatWithTrainer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.trainer")
	defer span.End()

	question := r.URL.Query().Get("question")
	if question == "" && pkg.IsJSONRequest(r) {
		var body struct {
			Question string `json:"question"`
		}
		if err := pkg.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		question = body.Question
	}

	question = strings.TrimSpace(question)
	if question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.service.AskTrainer(ctx, question), http.StatusOK)
}

type workoutCaloriesRequest struct {
	Exercise string  `json:"exercise"`
	Duration int     `json:"duration"`
	Weight   float64 `json:"weight"`
}

func (handler *Handler) HandleWorkoutCalories(w http.ResponseWriter, r *http.Request) {
	var req workoutCaloriesRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Exercise) == "" || req.Duration <= 0 || req.Weight <= 0 {
		http.Error(w, "exercise, positive duration and weight are required", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, metabolic.WorkoutCalories(req.Exercise, req.Duration, req.Weight), http.StatusOK)
}

type mealCaloriesRequest struct {
	TDEE        float64 `json:"tdee"`
	Goal        string  `json:"goal"`
	MealsPerDay int     `json:"meals_per_day"`
}

func (handler *Handler) HandleMealCalories(w http.ResponseWriter, r *http.Request) {
	req := mealCaloriesRequest{MealsPerDay: 3}
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.TDEE <= 0 {
		http.Error(w, "tdee must be positive", http.StatusBadRequest)
		return
	}

	mealCalories, err := metabolic.MealCalories(req.TDEE, req.Goal, req.MealsPerDay)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, mealCalories, http.StatusOK)
}

func (handler *Handler) HandleFoodRecommendations(w http.ResponseWriter, r *http.Request) {
	goal := r.URL.Query().Get("goal")
	pkg.WriteJSON(w, metabolic.FoodsForGoal(goal), http.StatusOK)
}
