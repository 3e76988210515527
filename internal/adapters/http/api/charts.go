package api

import (
	"context"
	"net/http"

	service "github.com/alexdes2202/inf8808-team7-deploy/internal/app"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/filter"
)

// ChartsHandler serves the filter options and every chart table.
type ChartsHandler struct {
	deps Dependencies
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps Dependencies) *ChartsHandler {
	return &ChartsHandler{deps: deps}
}

// serveChart validates the selection, builds one chart and writes it.
func serveChart[T any](w http.ResponseWriter, r *http.Request, op string, deps Dependencies,
	build func(context.Context, filter.Filter) (service.Chart[T], error),
) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f, err := deps.ParseFilter(r.Context(), rawFilter(r))
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	c, err := build(r.Context(), f)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeChart(w, c)
}

// HandleFilters handles GET /api/filters requests.
func (h *ChartsHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	const op = "api.filters"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f, err := h.deps.ParseFilter(r.Context(), rawFilter(r))
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	opts, err := h.deps.FilterOptions(r.Context(), f)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, chartResponse{Status: statusOK, Data: opts})
}

// HandleAgeDistribution handles GET /api/charts/age-distribution requests.
func (h *ChartsHandler) HandleAgeDistribution(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.age_distribution", h.deps, h.deps.AgeDistribution)
}

// HandleEventAge handles GET /api/charts/event-age requests.
func (h *ChartsHandler) HandleEventAge(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.event_age", h.deps, h.deps.EventAgeEvolution)
}

// HandleMedalAge handles GET /api/charts/medal-age requests.
func (h *ChartsHandler) HandleMedalAge(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.medal_age", h.deps, h.deps.MedalAgeDistribution)
}

// HandlePerformance handles GET /api/charts/performance requests.
func (h *ChartsHandler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.performance", h.deps, h.deps.Performance)
}

// HandleGenderEvents handles GET /api/charts/gender-events requests.
func (h *ChartsHandler) HandleGenderEvents(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.gender_events", h.deps, h.deps.GenderEvents)
}

// HandleGenderRatio handles GET /api/charts/gender-ratio requests.
func (h *ChartsHandler) HandleGenderRatio(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.gender_ratio", h.deps, h.deps.GenderRatio)
}

// HandleParticipationOdds handles GET /api/charts/participation-odds requests.
func (h *ChartsHandler) HandleParticipationOdds(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.participation_odds", h.deps, h.deps.ParticipationOdds)
}

// HandleCareerSpan handles GET /api/charts/career-span requests.
func (h *ChartsHandler) HandleCareerSpan(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.career_span", h.deps, h.deps.CareerSpan)
}

// HandleHallOfFame handles GET /api/charts/hall-of-fame requests.
func (h *ChartsHandler) HandleHallOfFame(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, "api.hall_of_fame", h.deps, h.deps.HallOfFame)
}
