// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	service "github.com/alexdes2202/inf8808-team7-deploy/internal/app"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/filter"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/ranking"
)

const rankPrefix = "/api/athletes/rank/"

// RankDependencies defines the interface for rank operations.
type RankDependencies interface {
	ParseFilter(ctx context.Context, raw filter.Raw) (filter.Filter, error)
	AthleteRank(ctx context.Context, f filter.Filter, name string) (service.Chart[ranking.Standing], error)
}

// RankHandler handles rank requests.
type RankHandler struct {
	deps RankDependencies
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(deps RankDependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

// HandleGetRank handles GET /api/athletes/rank/{name} requests. An optional
// sport query parameter narrows the board to one discipline.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	const op = "api.athlete_rank"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after the prefix
	name, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), rankPrefix))
	if err != nil || strings.TrimSpace(name) == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	f, err := h.deps.ParseFilter(r.Context(), rawFilter(r))
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	c, err := h.deps.AthleteRank(r.Context(), f, name)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeChart(w, c)
}
