package meals

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=meals_mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, meal *Meal) (*Meal, error)
	Get(ctx context.Context, userID, id string) (*Meal, error)
	List(ctx context.Context, userID string, dateRange pkg.DateRange) ([]Meal, error)
	Update(ctx context.Context, userID, id string, update Update) (*Meal, error)
	Delete(ctx context.Context, userID, id string) error
}

type Handler struct {
	repo           mealsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo mealsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mealsRouter := mainRouter.PathPrefix("/meals").Subrouter()
	mealsRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal")
	mealsRouter.HandleFunc("/", handler.HandleAdd).Methods("POST", "OPTIONS")
	mealsRouter.HandleFunc("", handler.HandleList).Methods("GET").Name("meals")
	mealsRouter.HandleFunc("/", handler.HandleList).Methods("GET")
	mealsRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-meal")
	mealsRouter.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-meal")
	mealsRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-meal")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.new")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var newMeal NewMeal
	if err := pkg.DecodeJSONBody(r, &newMeal); err != nil {
		log.Errorf("new meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}
	if err := newMeal.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	date := now
	if newMeal.Date != "" {
		parsed, err := pkg.ParseDate(newMeal.Date)
		if err != nil {
			http.Error(w, "invalid meal date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	meal, err := handler.repo.Add(ctx, &Meal{
		UserID:    userID,
		Type:      newMeal.Type,
		Foods:     newMeal.Foods,
		Notes:     newMeal.Notes,
		Date:      date,
		CreatedAt: now,
	})
	if err != nil {
		log.Errorf("failed to add new meal [%s] for %s: %s", newMeal.Type, userID, err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecordsCreated.WithLabelValues("meal").Inc()
	}

	log.Debugf("new meal added: [%s] %.0f kcal: %s", meal.Type, meal.TotalCalories, meal.ID)
	pkg.WriteJSON(w, meal, http.StatusCreated)
}

// HandleList filters on whole days: start_date from its midnight, end_date up to its last millisecond.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	dateRange, err := pkg.DateRangeFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meals, err := handler.repo.List(ctx, userID, dateRange.WholeDays())
	if err != nil {
		log.Errorf("list meals for %s: %s", userID, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, meals, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	meal, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get", id, err)
		return
	}

	pkg.WriteJSON(w, meal, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.update")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, PUT, DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var update Update
	if err := pkg.DecodeJSONBody(r, &update); err != nil {
		log.Errorf("update meal, unmarshal json params: %s", err)
		http.Error(w, "update meal failed", http.StatusBadRequest)
		return
	}
	if err := update.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	var meal *Meal
	var err error
	if update.IsEmpty() {
		meal, err = handler.repo.Get(ctx, userID, id)
	} else {
		meal, err = handler.repo.Update(ctx, userID, id, update)
	}
	if err != nil {
		handler.writeRepoError(w, "update", id, err)
		return
	}

	pkg.WriteJSON(w, meal, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		handler.writeRepoError(w, "delete", id, err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "Meal deleted successfully"}, http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, ErrMealNotFound) {
		http.Error(w, "Meal not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s meal %s: %s", op, id, err)
	http.Error(w, "error, failed to "+op+" meal", http.StatusInternalServerError)
}
