package equity

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/ploengine/internal/cards"
)

// SimulateParallel splits sims across workers goroutines and averages the
// per-worker equity estimates, each seeded independently from seed so the
// overall result stays reproducible for a fixed (seed, workers) pair.
// Grounded on the teacher's errgroup-based EstimateEquityParallel. Used
// only by the benchmarking tool (cmd/bench) — the solver's own per-call
// path (Simulate) stays single-threaded, per the concurrency model.
func SimulateParallel(hero, board, dead []cards.Card, sims, opponents, handSize int, seed uint64, workers int) (float64, error) {
	if workers < 1 {
		return 0, fmt.Errorf("equity: workers must be >= 1, got %d", workers)
	}
	if workers == 1 {
		return Simulate(hero, board, dead, sims, opponents, handSize, seed)
	}

	base := sims / workers
	remainder := sims % workers

	results := make([]float64, workers)
	counts := make([]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		n := base
		if w < remainder {
			n++
		}
		counts[w] = n
		if n == 0 {
			continue
		}
		workerSeed := seed ^ (uint64(w+1) * 0x9E3779B97F4A7C15)

		g.Go(func() error {
			v, err := Simulate(hero, board, dead, n, opponents, handSize, workerSeed)
			if err != nil {
				return err
			}
			results[w] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total float64
	for w := 0; w < workers; w++ {
		total += results[w] * float64(counts[w])
	}
	return total / float64(sims), nil
}
