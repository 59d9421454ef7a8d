// Package opt provides the combinatorial optimization engine behind the
// best-fit dispatch strategy: a permutation genetic search with order
// crossover, swap mutation, tournament selection, and elitism.
package opt

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/service/dispatch"
)

const (
	defaultPopulationSize = 50
	tournamentSize        = 3
	mutationRate          = 0.2
	eliteCount            = 1
)

// Config stores engine settings.
type Config struct {
	// PopulationSize is the number of candidate permutations per
	// generation. Defaults to 50.
	PopulationSize int
	// Workers bounds concurrent fitness evaluations. Defaults to the
	// number of CPUs.
	Workers int
	// Seed makes the search reproducible. 0 seeds from the clock.
	Seed int64
}

// Genetic is a permutation search engine implementing dispatch.Engine.
// Fitness evaluation runs on a bounded worker pool; selection and breeding
// are sequential, so a fixed seed yields a fully deterministic search.
type Genetic struct {
	cfg Config
}

// New creates an engine, filling config defaults.
func New(cfg Config) *Genetic {
	if cfg.PopulationSize <= 0 {
		cfg.PopulationSize = defaultPopulationSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Genetic{cfg: cfg}
}

// Best implements dispatch.Engine. It evolves permutations of
// [0, p.Size) until the fitness has been steady for p.SteadyWindow
// generations or p.MaxGenerations have run, whichever comes first, and
// returns the best permutation seen.
func (g *Genetic) Best(ctx context.Context, p dispatch.Problem) ([]int, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("optimize: empty search space: %w", apperr.Invalid)
	}
	if p.Fitness == nil {
		return nil, fmt.Errorf("optimize: fitness function: %w", apperr.Missing)
	}
	steadyWindow := p.SteadyWindow
	if steadyWindow <= 0 {
		steadyWindow = 50 * p.Size
	}
	maxGenerations := p.MaxGenerations
	if maxGenerations <= 0 {
		maxGenerations = 100 * p.Size
	}

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	population := g.seedPopulation(p.Size, rng)
	scores, err := g.evaluate(ctx, population, p)
	if err != nil {
		return nil, err
	}

	bestIdx := argBest(scores)
	best := clonePerm(population[bestIdx])
	bestScore := scores[bestIdx]

	steady := 0
	for gen := 0; gen < maxGenerations && steady < steadyWindow; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("optimize: %w", err)
		}

		population = g.breed(population, scores, rng)
		if scores, err = g.evaluate(ctx, population, p); err != nil {
			return nil, err
		}

		genBest := argBest(scores)
		if scores[genBest] > bestScore {
			bestScore = scores[genBest]
			best = clonePerm(population[genBest])
			steady = 0
		} else {
			steady++
		}
	}
	return best, nil
}

// seedPopulation builds the initial candidates: the identity permutation
// first, then random shuffles.
func (g *Genetic) seedPopulation(size int, rng *rand.Rand) [][]int {
	population := make([][]int, g.cfg.PopulationSize)
	identity := make([]int, size)
	for i := range identity {
		identity[i] = i
	}
	population[0] = identity
	for i := 1; i < len(population); i++ {
		perm := clonePerm(identity)
		rng.Shuffle(size, func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		population[i] = perm
	}
	return population
}

// evaluate scores the whole population on the worker pool. Scores are
// normalized to "higher is better" regardless of the objective direction.
func (g *Genetic) evaluate(ctx context.Context, population [][]int, p dispatch.Problem) ([]int, error) {
	scores := make([]int, len(population))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i := range population {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := p.Fitness(population[i])
			if !p.Maximize {
				s = -s
			}
			scores[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	return scores, nil
}

// breed produces the next generation: the best candidate survives
// unchanged, the rest come from tournament-selected parents recombined
// with order crossover and occasionally perturbed by a swap mutation.
func (g *Genetic) breed(population [][]int, scores []int, rng *rand.Rand) [][]int {
	next := make([][]int, 0, len(population))
	best := argBest(scores)
	for i := 0; i < eliteCount && i < len(population); i++ {
		next = append(next, clonePerm(population[best]))
	}
	for len(next) < len(population) {
		a := tournament(scores, rng)
		b := tournament(scores, rng)
		child := orderCrossover(population[a], population[b], rng)
		if rng.Float64() < mutationRate {
			swapMutate(child, rng)
		}
		next = append(next, child)
	}
	return next
}

// tournament returns the index of the fittest among k randomly drawn
// candidates.
func tournament(scores []int, rng *rand.Rand) int {
	best := rng.Intn(len(scores))
	for i := 1; i < tournamentSize; i++ {
		c := rng.Intn(len(scores))
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

// orderCrossover keeps a random slice of parent a in place and fills the
// remaining positions with b's elements in b's order.
func orderCrossover(a, b []int, rng *rand.Rand) []int {
	n := len(a)
	lo := rng.Intn(n)
	hi := lo + rng.Intn(n-lo) + 1

	child := make([]int, n)
	used := make([]bool, n)
	for i := range child {
		child[i] = -1
	}
	for i := lo; i < hi; i++ {
		child[i] = a[i]
		used[a[i]] = true
	}
	pos := 0
	for _, v := range b {
		if used[v] {
			continue
		}
		for child[pos] != -1 {
			pos++
		}
		child[pos] = v
	}
	return child
}

func swapMutate(perm []int, rng *rand.Rand) {
	if len(perm) < 2 {
		return
	}
	i := rng.Intn(len(perm))
	j := rng.Intn(len(perm))
	perm[i], perm[j] = perm[j], perm[i]
}

func argBest(scores []int) int {
	best := 0
	bestScore := math.MinInt
	for i, s := range scores {
		if s > bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}

func clonePerm(perm []int) []int {
	out := make([]int, len(perm))
	copy(out, perm)
	return out
}
