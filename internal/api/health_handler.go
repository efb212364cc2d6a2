package api

import (
	"log/slog"
	"net/http"

	"github.com/ntvhoang/lingo-api/internal/api/shared"
	"github.com/ntvhoang/lingo-api/internal/generation"
)

// HealthHandler handles liveness/readiness probe requests.
type HealthHandler struct {
	checker generation.ReadinessChecker
	logger  *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checker generation.ReadinessChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// Health handles GET /api/health requests. It reports healthy unless the
// process cannot reach its configured dependencies, in which case it returns
// 503. The probe has no side effects.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.Ready(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", "error", err)
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable,
			HealthResponse{Status: HealthStatusUnhealthy})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		HealthResponse{Status: HealthStatusHealthy})
}
