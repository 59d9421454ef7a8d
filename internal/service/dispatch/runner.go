package dispatch

import (
	"context"
	"fmt"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/service/scoring"
)

// List of dispatch strategy names.
const (
	StrategyFIFO    = "fifo"
	StrategyQueue   = "queue"
	StrategyBestFit = "bestfit"
)

// ValidStrategy reports whether name selects a known strategy.
func ValidStrategy(name string) bool {
	switch name {
	case StrategyFIFO, StrategyQueue, StrategyBestFit:
		return true
	}
	return false
}

// Runner selects a scheduler by name, runs it over a batch of orders, and
// scores the output. It is the single entry point shared by the CLI and
// the HTTP service.
type Runner struct {
	window Window
	engine Engine
	logger logx.Logger
}

// NewRunner creates a Runner. The engine backs the best-fit strategy.
func NewRunner(window Window, engine Engine, logger logx.Logger) *Runner {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Runner{window: window, engine: engine, logger: logger}
}

// SchedulerFor builds the named scheduler for a depot location.
func (r *Runner) SchedulerFor(strategy string, depot domain.Coordinate) (Scheduler, error) {
	switch strategy {
	case StrategyFIFO:
		return NewFIFO(depot, r.window), nil
	case StrategyQueue:
		return NewPriorityQueue(depot, r.window), nil
	case StrategyBestFit:
		return NewBestFit(depot, r.window, r.engine), nil
	}
	return nil, fmt.Errorf("strategy %q: %w", strategy, apperr.Invalid)
}

// Run schedules the batch with the named strategy and returns the
// deliveries together with their NPS.
func (r *Runner) Run(ctx context.Context, strategy string, depot domain.Coordinate, orders []domain.Order) ([]domain.Delivery, int, error) {
	scheduler, err := r.SchedulerFor(strategy, depot)
	if err != nil {
		return nil, 0, err
	}

	deliveries, err := scheduler.Schedule(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	score, err := scoring.NPS(deliveries)
	if err != nil {
		return nil, 0, err
	}

	r.logger.Info("schedule run",
		logx.String("strategy", strategy),
		logx.Int("orders", len(orders)),
		logx.Int("nps", score),
	)
	return deliveries, score, nil
}
