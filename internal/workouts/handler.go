package workouts

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

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout *Workout) (*Workout, error)
	Get(ctx context.Context, userID, id string) (*Workout, error)
	List(ctx context.Context, userID string, dateRange pkg.DateRange) ([]Workout, error)
	Update(ctx context.Context, userID, id string, update Update) (*Workout, error)
	Delete(ctx context.Context, userID, id string) error
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	workoutsRouter := mainRouter.PathPrefix("/workouts").Subrouter()
	workoutsRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	workoutsRouter.HandleFunc("/", handler.HandleAdd).Methods("POST", "OPTIONS")
	workoutsRouter.HandleFunc("", handler.HandleList).Methods("GET").Name("workouts")
	workoutsRouter.HandleFunc("/", handler.HandleList).Methods("GET")
	workoutsRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-workout")
	workoutsRouter.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	workoutsRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-workout")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
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

	var newWorkout NewWorkout
	if err := pkg.DecodeJSONBody(r, &newWorkout); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}
	if err := newWorkout.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	date := now
	if newWorkout.Date != "" {
		parsed, err := pkg.ParseDate(newWorkout.Date)
		if err != nil {
			http.Error(w, "invalid workout date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	workout, err := handler.repo.Add(ctx, &Workout{
		UserID:         userID,
		Title:          newWorkout.Title,
		Type:           newWorkout.Type,
		Exercises:      newWorkout.Exercises,
		Duration:       newWorkout.Duration,
		CaloriesBurned: newWorkout.CaloriesBurned,
		Notes:          newWorkout.Notes,
		Date:           date,
		CreatedAt:      now,
	})
	if err != nil {
		log.Errorf("failed to add new workout [%s] for %s: %s", newWorkout.Title, userID, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecordsCreated.WithLabelValues("workout").Inc()
	}

	log.Debugf("new workout added: [%s] [%s]: %s", workout.Title, workout.Type, workout.ID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
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

	workouts, err := handler.repo.List(ctx, userID, dateRange)
	if err != nil {
		log.Errorf("list workouts for %s: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	workout, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get", id, err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

// HandleUpdate with an empty body answers the stored workout unchanged.
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	if err := update.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	var workout *Workout
	var err error
	if update.IsEmpty() {
		workout, err = handler.repo.Get(ctx, userID, id)
	} else {
		workout, err = handler.repo.Update(ctx, userID, id, update)
	}
	if err != nil {
		handler.writeRepoError(w, "update", id, err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
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

	pkg.WriteJSON(w, map[string]string{"message": "Workout deleted successfully"}, http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s workout %s: %s", op, id, err)
	http.Error(w, "error, failed to "+op+" workout", http.StatusInternalServerError)
}
