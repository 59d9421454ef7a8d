package opt_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/opt"
	"service-dispatch/internal/service/dispatch"
)

func requireValidPermutation(t *testing.T, perm []int, size int) {
	t.Helper()
	require.Len(t, perm, size)
	sorted := append([]int(nil), perm...)
	sort.Ints(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v, "not a permutation: %v", perm)
	}
}

func TestGenetic_Best_EmptyProblem(t *testing.T) {
	t.Parallel()

	engine := opt.New(opt.Config{Seed: 1})
	_, err := engine.Best(context.Background(), dispatch.Problem{Size: 0})
	require.ErrorIs(t, err, apperr.Invalid)
}

func TestGenetic_Best_MissingFitness(t *testing.T) {
	t.Parallel()

	engine := opt.New(opt.Config{Seed: 1})
	_, err := engine.Best(context.Background(), dispatch.Problem{Size: 3})
	require.ErrorIs(t, err, apperr.Missing)
}

func TestGenetic_Best_ReturnsPermutation(t *testing.T) {
	t.Parallel()

	const size = 6
	engine := opt.New(opt.Config{Seed: 42, Workers: 2})
	got, err := engine.Best(context.Background(), dispatch.Problem{
		Size:     size,
		Fitness:  func([]int) int { return 0 },
		Maximize: true,
	})
	require.NoError(t, err)
	requireValidPermutation(t, got, size)
}

func TestGenetic_Best_FindsSortedOrder(t *testing.T) {
	t.Parallel()

	// Reward each element sitting at its own index. The identity
	// permutation is the unique optimum and seeds the population, so the
	// search must find it.
	const size = 8
	fitness := func(perm []int) int {
		score := 0
		for i, v := range perm {
			if i == v {
				score++
			}
		}
		return score
	}

	engine := opt.New(opt.Config{Seed: 7, Workers: 4})
	got, err := engine.Best(context.Background(), dispatch.Problem{
		Size:     size,
		Fitness:  fitness,
		Maximize: true,
	})
	require.NoError(t, err)
	require.Equal(t, size, fitness(got), "expected the optimum, got %v", got)
}

func TestGenetic_Best_MinimizeInvertsObjective(t *testing.T) {
	t.Parallel()

	// Minimizing the match count should drive every element off its own
	// index (a derangement scores zero).
	const size = 8
	fitness := func(perm []int) int {
		score := 0
		for i, v := range perm {
			if i == v {
				score++
			}
		}
		return score
	}

	engine := opt.New(opt.Config{Seed: 7, Workers: 4})
	got, err := engine.Best(context.Background(), dispatch.Problem{
		Size:    size,
		Fitness: fitness,
	})
	require.NoError(t, err)
	require.Equal(t, 0, fitness(got), "expected a derangement, got %v", got)
}

func TestGenetic_Best_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	problem := dispatch.Problem{
		Size: 10,
		Fitness: func(perm []int) int {
			score := 0
			for i := 1; i < len(perm); i++ {
				if perm[i] > perm[i-1] {
					score++
				}
			}
			return score
		},
		Maximize:       true,
		SteadyWindow:   20,
		MaxGenerations: 100,
	}

	first, err := opt.New(opt.Config{Seed: 1234}).Best(context.Background(), problem)
	require.NoError(t, err)
	second, err := opt.New(opt.Config{Seed: 1234}).Best(context.Background(), problem)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenetic_Best_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := opt.New(opt.Config{Seed: 1})
	_, err := engine.Best(ctx, dispatch.Problem{
		Size:    5,
		Fitness: func([]int) int { return 0 },
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenetic_Best_SingleElement(t *testing.T) {
	t.Parallel()

	engine := opt.New(opt.Config{Seed: 1})
	got, err := engine.Best(context.Background(), dispatch.Problem{
		Size:     1,
		Fitness:  func([]int) int { return 100 },
		Maximize: true,
	})
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
}
