package water

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=water_mocks_test.go -package=water_test

type waterRepo interface {
	Add(ctx context.Context, record *Record) (*Record, error)
	Get(ctx context.Context, userID, id string) (*Record, error)
	List(ctx context.Context, userID string, dateRange pkg.DateRange) ([]Record, error)
	Summarize(ctx context.Context, userID string, dateRange pkg.DateRange) (Summary, error)
	Update(ctx context.Context, userID, id string, changes Changes, updatedAt time.Time) (*Record, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteBetween(ctx context.Context, userID string, from, to time.Time) (int64, error)
}

type Response struct {
	Success bool    `json:"success"`
	Data    *Record `json:"data,omitempty"`
	Message string  `json:"message,omitempty"`
}

type ListResponse struct {
	Success bool     `json:"success"`
	Data    []Record `json:"data"`
	Total   float64  `json:"total"`
	Goal    *float64 `json:"goal,omitempty"`
}

type Stats struct {
	Total          float64 `json:"total"`
	Average        float64 `json:"average"`
	Count          int     `json:"count"`
	Goal           float64 `json:"goal"`
	GoalPercentage float64 `json:"goal_percentage"`
}

type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

type ResetResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

type Handler struct {
	repo           waterRepo
	dailyGoal      float64
	metricsManager *metrics.Manager
	// injectable clock, for tests
	now func() time.Time
}

func NewHandler(repo waterRepo, dailyGoal float64, metricsManager *metrics.Manager) *Handler {
	if dailyGoal <= 0 {
		dailyGoal = DefaultDailyGoal
	}
	return &Handler{
		repo:           repo,
		dailyGoal:      dailyGoal,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the handler clock; "today" is always the current UTC day.
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	waterRouter := mainRouter.PathPrefix("/water").Subrouter()
	waterRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-water")
	waterRouter.HandleFunc("/", handler.HandleAdd).Methods("POST", "OPTIONS")
	waterRouter.HandleFunc("", handler.HandleList).Methods("GET").Name("water")
	waterRouter.HandleFunc("/", handler.HandleList).Methods("GET")
	// fixed paths go before /{id}
	waterRouter.HandleFunc("/today", handler.HandleToday).Methods("GET").Name("water-today")
	waterRouter.HandleFunc("/stats", handler.HandleStats).Methods("GET").Name("water-stats")
	waterRouter.HandleFunc("/today/reset", handler.HandleResetToday).Methods("DELETE").Name("water-today-reset")
	waterRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-water")
	waterRouter.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-water")
	waterRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-water")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.new")
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

	var newRecord NewRecord
	if err := pkg.DecodeJSONBody(r, &newRecord); err != nil {
		log.Errorf("new water record, unmarshal json params: %s", err)
		http.Error(w, "add water record failed", http.StatusBadRequest)
		return
	}
	if !ValidAmount(newRecord.Amount) {
		http.Error(w, ErrInvalidAmount.Error(), http.StatusBadRequest)
		return
	}

	now := handler.now().UTC()
	date := now
	if newRecord.Date != "" {
		parsed, err := pkg.ParseDate(newRecord.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}
	recordTime := newRecord.Time
	if recordTime == "" {
		recordTime = now.Format(TimeLayout)
	}

	record, err := handler.repo.Add(ctx, &Record{
		UserID:    userID,
		Amount:    newRecord.Amount,
		Date:      date,
		Time:      recordTime,
		Notes:     newRecord.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Errorf("failed to add water record for %s: %s", userID, err)
		http.Error(w, "error, failed to add water record", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecordsCreated.WithLabelValues("water").Inc()
	}

	pkg.WriteJSON(w, Response{
		Success: true,
		Data:    record,
		Message: "Water intake logged successfully",
	}, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.list")
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

	records, err := handler.repo.List(ctx, userID, dateRange)
	if err != nil {
		log.Errorf("list water records for %s: %s", userID, err)
		http.Error(w, "failed to get water records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Success: true,
		Data:    records,
		Total:   sumAmounts(records),
	}, http.StatusOK)
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.today")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	now := handler.now()
	todayStart, todayEnd := pkg.StartOfDay(now), pkg.EndOfDay(now)
	records, err := handler.repo.List(ctx, userID, pkg.DateRange{From: &todayStart, To: &todayEnd})
	if err != nil {
		log.Errorf("list today's water records for %s: %s", userID, err)
		http.Error(w, "failed to get water records", http.StatusInternalServerError)
		return
	}

	goal := handler.dailyGoal
	pkg.WriteJSON(w, ListResponse{
		Success: true,
		Data:    records,
		Total:   sumAmounts(records),
		Goal:    &goal,
	}, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.stats")
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

	summary, err := handler.repo.Summarize(ctx, userID, dateRange)
	if err != nil {
		log.Errorf("water stats for %s: %s", userID, err)
		http.Error(w, "failed to get water stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, StatsResponse{
		Success: true,
		Stats:   handler.stats(summary),
	}, http.StatusOK)
}

func (handler *Handler) stats(summary Summary) Stats {
	var average float64
	if summary.Count > 0 {
		average = summary.Total / float64(summary.Count)
	}
	return Stats{
		Total:          pkg.Round(summary.Total, 2),
		Average:        pkg.Round(average, 2),
		Count:          summary.Count,
		Goal:           handler.dailyGoal,
		GoalPercentage: pkg.Round(summary.Total/handler.dailyGoal*100, 2),
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	record, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get", id, err)
		return
	}

	pkg.WriteJSON(w, record, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.update")
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
		log.Errorf("update water record, unmarshal json params: %s", err)
		http.Error(w, "update water record failed", http.StatusBadRequest)
		return
	}

	changes, err := toChanges(update)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	record, err := handler.repo.Update(ctx, userID, id, changes, handler.now().UTC())
	if err != nil {
		handler.writeRepoError(w, "update", id, err)
		return
	}

	pkg.WriteJSON(w, Response{
		Success: true,
		Data:    record,
		Message: "Water intake updated successfully",
	}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.delete")
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

	pkg.WriteJSON(w, Response{
		Success: true,
		Message: "Water deleted successfully",
	}, http.StatusOK)
}

func (handler *Handler) HandleResetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.resetToday")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	todayStart := pkg.StartOfDay(handler.now())
	deleted, err := handler.repo.DeleteBetween(ctx, userID, todayStart, todayStart.Add(24*time.Hour))
	if err != nil {
		log.Errorf("reset today's water for %s: %s", userID, err)
		http.Error(w, "failed to reset water records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ResetResponse{
		Success:      true,
		Message:      fmt.Sprintf("Reset %d water records for today", deleted),
		DeletedCount: deleted,
	}, http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ErrWaterNotFound):
		http.Error(w, "Water record not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s water record %s: %s", op, id, err)
		http.Error(w, "error, failed to "+op+" water record", http.StatusInternalServerError)
	}
}

func toChanges(update Update) (Changes, error) {
	changes := Changes{
		Amount: update.Amount,
		Time:   update.Time,
		Notes:  update.Notes,
	}
	if update.Amount != nil && !ValidAmount(*update.Amount) {
		return Changes{}, ErrInvalidAmount
	}
	if update.Date != nil {
		date, err := pkg.ParseDate(*update.Date)
		if err != nil {
			return Changes{}, errors.New("invalid date")
		}
		changes.Date = &date
	}
	return changes, nil
}

func sumAmounts(records []Record) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Amount
	}
	return pkg.Round(total, 2)
}
