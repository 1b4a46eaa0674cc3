// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Activities returns a snapshot of the full registry.
	Activities(ctx context.Context) map[string]ActivityView

	// Signup registers an email for an activity; returns the confirmation message.
	Signup(ctx context.Context, activity, email string) (string, error)

	// Remove deletes an email from an activity; returns the confirmation message.
	Remove(ctx context.Context, activity, email string) (string, error)
}

// ActivityView mirrors the read shape returned by registry queries.
type ActivityView = types.ActivityView

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	activitiesHandler   *ActivitiesHandler
	signupHandler       *SignupHandler
	participantsHandler *ParticipantsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		activitiesHandler:   NewActivitiesHandler(deps),
		signupHandler:       NewSignupHandler(deps),
		participantsHandler: NewParticipantsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Path parameters arrive
// percent-decoded from the mux, so activity names with spaces and emails
// with @ match as-is.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /activities", MetricsMiddleware(s.activitiesHandler.HandleGetActivities, "activities"))
	mux.HandleFunc("POST /activities/{activity}/signup", MetricsMiddleware(s.signupHandler.HandleSignup, "signup"))
	mux.HandleFunc("DELETE /activities/{activity}/participants/{email}", MetricsMiddleware(s.participantsHandler.HandleRemove, "remove"))
}

// messageResponse is the success body for signup and remove.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error body for all failed requests.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
