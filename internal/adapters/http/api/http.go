// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/alexdes2202/inf8808-team7-deploy/internal/app"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/aggregate"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/filter"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/ranking"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/sankey"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ParseFilter(ctx context.Context, raw filter.Raw) (filter.Filter, error)
	FilterOptions(ctx context.Context, f filter.Filter) (service.Options, error)

	AgeDistribution(ctx context.Context, f filter.Filter) (service.Chart[service.AgeDistribution], error)
	EventAgeEvolution(ctx context.Context, f filter.Filter) (service.Chart[service.EventAge], error)
	MedalAgeDistribution(ctx context.Context, f filter.Filter) (service.Chart[service.MedalAge], error)
	Performance(ctx context.Context, f filter.Filter) (service.Chart[sankey.Flow], error)
	GenderEvents(ctx context.Context, f filter.Filter) (service.Chart[[]aggregate.EventGenderCount], error)
	GenderRatio(ctx context.Context, f filter.Filter) (service.Chart[service.GenderRatio], error)
	ParticipationOdds(ctx context.Context, f filter.Filter) (service.Chart[service.ParticipationOdds], error)
	CareerSpan(ctx context.Context, f filter.Filter) (service.Chart[[]aggregate.AgeSpan], error)
	HallOfFame(ctx context.Context, f filter.Filter) (service.Chart[ranking.HallOfFame], error)

	RankDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	chartsHandler    *ChartsHandler
	rankHandler      *RankHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		chartsHandler:    NewChartsHandler(deps),
		rankHandler:      NewRankHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	mux.HandleFunc("/dashboard", RequestIDMiddleware(s.dashboardHandler.HandleDashboard))

	c := s.chartsHandler
	route("/api/filters", "filters", c.HandleFilters)
	route("/api/charts/age-distribution", "age_distribution", c.HandleAgeDistribution)
	route("/api/charts/event-age", "event_age", c.HandleEventAge)
	route("/api/charts/medal-age", "medal_age", c.HandleMedalAge)
	route("/api/charts/performance", "performance", c.HandlePerformance)
	route("/api/charts/gender-events", "gender_events", c.HandleGenderEvents)
	route("/api/charts/gender-ratio", "gender_ratio", c.HandleGenderRatio)
	route("/api/charts/participation-odds", "participation_odds", c.HandleParticipationOdds)
	route("/api/charts/career-span", "career_span", c.HandleCareerSpan)
	route("/api/charts/hall-of-fame", "hall_of_fame", c.HandleHallOfFame)
	route(rankPrefix, "athlete_rank", s.rankHandler.HandleGetRank)
}

// Response statuses.
const (
	statusOK     = "ok"
	statusNoData = "no_data"
)

// chartResponse is the envelope of every /api response.
type chartResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	SizeColumn string `json:"size_column,omitempty"`
	Data       any    `json:"data"`
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

func writeChart[T any](w http.ResponseWriter, c service.Chart[T]) {
	resp := chartResponse{Status: statusOK, Message: c.Message, SizeColumn: c.SizeColumn, Data: c.Data}
	if c.Empty {
		resp.Status = statusNoData
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeFailure maps service and domain errors onto the HTTP contract:
// rejected input is a 400, a missing selection is an informational
// no_data answer, an unknown athlete is a 404 and anything else a 500.
func writeFailure(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, filter.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrSportRequired), errors.Is(err, service.ErrCountryRequired):
		writeJSON(w, http.StatusOK, chartResponse{Status: statusNoData, Message: selectionMessage(err)})
	case errors.Is(err, ranking.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
	}
}

func selectionMessage(err error) string {
	if errors.Is(err, service.ErrCountryRequired) {
		return "Please select a country and a discipline to view this chart."
	}
	return "Please select a discipline to view this chart."
}

// rawFilter reads the selection query parameters.
func rawFilter(r *http.Request) filter.Raw {
	q := r.URL.Query()
	return filter.Raw{
		Sport:       q.Get(filter.FieldSport),
		Country:     q.Get(filter.FieldCountry),
		Sex:         q.Get(filter.FieldSex),
		Age:         q.Get(filter.FieldAge),
		Mode:        q.Get(filter.FieldMode),
		Year:        q.Get(filter.FieldYear),
		Event:       q.Get(filter.FieldEvent),
		ShowAverage: q.Get(filter.FieldShowAverage),
	}
}
