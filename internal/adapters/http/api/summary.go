// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/footprint/internal/domain/types"
)

// SummaryDependencies defines the interface for summary reads.
type SummaryDependencies interface {
	Summary(ctx context.Context, sessionID string) (types.Summary, error)
}

// SummaryHandler handles summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /api/summary requests: the latest record per
// category plus the combined total, for the composition chart.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request, sessionID string) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sum, err := h.deps.Summary(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, ErrInternal, err))
		return
	}
	if sum.Latest == nil {
		sum.Latest = []types.Record{}
	}
	writeJSON(w, http.StatusOK, sum)
}
