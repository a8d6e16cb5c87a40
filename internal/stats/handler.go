package stats

import (
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	now     func() time.Time
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// WithClock replaces the handler's time source.
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	usersRouter := mainRouter.PathPrefix("/users").Subrouter()
	usersRouter.HandleFunc("/stats/detailed", handler.HandleDetailed).Methods("GET").Name("detailed-stats")
}

func (handler *Handler) HandleDetailed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.detailed")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	detailed, err := handler.service.Detailed(ctx, userID, handler.now().UTC())
	if err != nil {
		log.Errorf("detailed stats for %s: %s", userID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, detailed, http.StatusOK)
}
