package handlers

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/metrics"
	"service-dispatch/internal/service/dispatch"
)

// ScheduleHandler handles HTTP requests for schedule runs.
type ScheduleHandler struct {
	usecase  scheduleUsecase
	logger   logx.Logger
	strategy string

	runsTotal *prometheus.CounterVec
	npsHist   prometheus.Histogram
}

// NewScheduleHandler creates a ScheduleHandler. The defaultStrategy is used
// when a request does not name one. Metrics are registered on reg.
func NewScheduleHandler(logger logx.Logger, uc scheduleUsecase, defaultStrategy string, reg prometheus.Registerer) *ScheduleHandler {
	h := &ScheduleHandler{
		usecase:   uc,
		logger:    logger,
		strategy:  defaultStrategy,
		runsTotal: metrics.NewScheduleRunsTotal(),
		npsHist:   metrics.NewScheduleNPS(),
	}
	if reg != nil {
		reg.MustRegister(h.runsTotal, h.npsHist)
	}
	return h
}

// Create handles POST /v1/schedules.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = h.strategy
	}
	if !dispatch.ValidStrategy(strategy) {
		writeError(h.logger, w, r, http.StatusBadRequest, "unknown strategy")
		return
	}

	orders, err := req.toOrders()
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order")
		return
	}

	depot := req.Depot.toModel()
	deliveries, nps, err := h.usecase.Run(r.Context(), strategy, depot, orders)
	switch {
	case err == nil:
		h.runsTotal.WithLabelValues(strategy).Inc()
		h.npsHist.Observe(float64(nps))
		writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(deliveries, nps))
	case errors.Is(err, apperr.Invalid), errors.Is(err, apperr.Missing):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
