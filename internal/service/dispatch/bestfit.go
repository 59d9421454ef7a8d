package dispatch

import (
	"context"
	"fmt"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/scoring"
)

// Termination parameters for the permutation search, scaled by batch size.
const (
	steadyWindowFactor  = 50
	generationCapFactor = 100
)

// BestFit searches permutations of the incoming orders for the highest NPS
// before delegating the final run to the arrival-order scheduler. The
// search itself is performed by an injected Engine; this type only frames
// the problem.
type BestFit struct {
	fifo   *FIFO
	engine Engine
}

// NewBestFit creates a permutation-optimized scheduler backed by the given
// engine.
func NewBestFit(depot domain.Coordinate, window Window, engine Engine) *BestFit {
	return &BestFit{fifo: NewFIFO(depot, window), engine: engine}
}

// Schedule implements Scheduler. It blocks until the engine returns; a
// caller needing wall-clock bounds should cancel ctx.
func (b *BestFit) Schedule(ctx context.Context, orders []domain.Order) ([]domain.Delivery, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("best-fit schedule: %w", apperr.Invalid)
	}

	scheduled := newScheduledOrders(orders, b.fifo.depot)
	n := len(scheduled)
	problem := Problem{
		Size: n,
		Fitness: func(perm []int) int {
			score, _ := scoring.NPS(b.fifo.run(applyPermutation(scheduled, perm)))
			return score
		},
		Maximize:       true,
		SteadyWindow:   steadyWindowFactor * n,
		MaxGenerations: generationCapFactor * n,
	}

	best, err := b.engine.Best(ctx, problem)
	if err != nil {
		return nil, fmt.Errorf("best-fit schedule: %w", err)
	}
	if len(best) != n {
		return nil, fmt.Errorf("best-fit schedule: engine returned %d of %d indices: %w", len(best), n, apperr.Invalid)
	}
	return b.fifo.run(applyPermutation(scheduled, best)), nil
}

func applyPermutation(scheduled []ScheduledOrder, perm []int) []ScheduledOrder {
	out := make([]ScheduledOrder, len(perm))
	for i, idx := range perm {
		out[i] = scheduled[idx]
	}
	return out
}
