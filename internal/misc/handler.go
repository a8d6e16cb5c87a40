package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const readinessTimeout = 2 * time.Second

// Pinger is anything that can report whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain func to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type StatusResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Version string            `json:"version,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	versionInfo string
	startedAt   time.Time
	// readiness dependencies, keyed by name
	pingers map[string]Pinger
}

func NewHandler(versionInfo string, pingers map[string]Pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		startedAt:   time.Now(),
		pingers:     pingers,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/ready", handler.handleReady).Methods("GET").Name("ready")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, StatusResponse{
		Status:  "ok",
		Message: "FitTrack API is running",
	}, http.StatusOK)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, StatusResponse{
		Status:  "ok",
		Version: handler.versionInfo,
		Uptime:  time.Since(handler.startedAt).Truncate(time.Second).String(),
	}, http.StatusOK)
}

// handleReady pings every dependency and answers 503 if any of them is down.
func (handler *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	resp := StatusResponse{
		Status: "ok",
		Checks: make(map[string]string, len(handler.pingers)),
	}
	statusCode := http.StatusOK
	for name, pinger := range handler.pingers {
		if err := pinger.Ping(ctx); err != nil {
			log.Errorf("readiness check [%s]: %s", name, err)
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	span.SetAttributes(attribute.String("status", resp.Status))
	pkg.WriteJSON(w, resp, statusCode)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
