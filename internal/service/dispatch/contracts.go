package dispatch

import (
	"context"

	"service-dispatch/internal/domain"
)

// Scheduler turns a batch of placed orders into a full day of deliveries.
// Every input order yields exactly one delivery, completed or incomplete.
// Implementations are pure: repeated calls with the same input produce
// identical output, and no state leaks between calls.
type Scheduler interface {
	Schedule(ctx context.Context, orders []domain.Order) ([]domain.Delivery, error)
}

// Problem frames a permutation search for an external combinatorial
// optimization engine. Candidates are permutations of [0, Size); Fitness
// must be pure and safe for concurrent calls.
type Problem struct {
	// Size is the number of elements being permuted.
	Size int
	// Fitness scores a candidate permutation.
	Fitness func(perm []int) int
	// Maximize sets the objective direction.
	Maximize bool
	// SteadyWindow stops the search after this many generations without
	// improvement.
	SteadyWindow int
	// MaxGenerations is the hard generation cap.
	MaxGenerations int
}

// Engine is a black-box combinatorial optimizer. The caller supplies the
// problem framing and blocks until the engine returns the best candidate
// permutation it found; the engine's internal search mechanics are opaque.
type Engine interface {
	Best(ctx context.Context, p Problem) ([]int, error)
}
