// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/footprint/internal/domain/estimator"
	"github.com/okian/footprint/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// NewSession mints a fresh session id.
	NewSession(ctx context.Context) string

	// Estimate operations: one synchronous compute-then-append per category.
	EstimateHousehold(ctx context.Context, sessionID string, in estimator.HouseholdInput) (types.Assessment, error)
	EstimateTransport(ctx context.Context, sessionID string, in estimator.TransportInput) (types.Assessment, error)
	EstimateCar(ctx context.Context, sessionID string, in estimator.CarInput) (types.Assessment, error)
	EstimateFood(ctx context.Context, sessionID string, in estimator.FoodInput) (types.Assessment, error)

	// Read operations expose the session ledger.
	History(ctx context.Context, sessionID string) ([]types.Record, error)
	Summary(ctx context.Context, sessionID string) (types.Summary, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	estimateHandler  *EstimateHandler
	historyHandler   *HistoryHandler
	summaryHandler   *SummaryHandler
	dashboardHandler *dashboardHandler
	sessions         *sessionCookie
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, cookieName string) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		estimateHandler:  NewEstimateHandler(deps),
		historyHandler:   NewHistoryHandler(deps),
		summaryHandler:   NewSummaryHandler(deps),
		dashboardHandler: newdashboardHandler(),
		sessions:         newSessionCookie(cookieName, deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/api/estimate/household",
		MetricsMiddleware(s.sessions.wrap(s.estimateHandler.HandleHousehold), "estimate_household"))
	mux.HandleFunc("/api/estimate/transport",
		MetricsMiddleware(s.sessions.wrap(s.estimateHandler.HandleTransport), "estimate_transport"))
	mux.HandleFunc("/api/estimate/car",
		MetricsMiddleware(s.sessions.wrap(s.estimateHandler.HandleCar), "estimate_car"))
	mux.HandleFunc("/api/estimate/food",
		MetricsMiddleware(s.sessions.wrap(s.estimateHandler.HandleFood), "estimate_food"))
	mux.HandleFunc("/api/history",
		MetricsMiddleware(s.sessions.wrap(s.historyHandler.HandleGetHistory), "history"))
	mux.HandleFunc("/api/summary",
		MetricsMiddleware(s.sessions.wrap(s.summaryHandler.HandleGetSummary), "summary"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
