// Command lifebench runs batches of random Game of Life soups headlessly and
// reports how they settle.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"multisim/internal/core"
	"multisim/internal/logging"
	"multisim/internal/sims/life"
)

type soup struct {
	edge    core.EdgePolicy
	density float64
	seed    int64
}

func (s soup) String() string {
	return fmt.Sprintf("edge=%s density=%.2f seed=%d", s.edge, s.density, s.seed)
}

type soupResult struct {
	soup       soup
	initial    int
	final      int
	peak       int
	settledAt  int
	period     int
	generation uint64
}

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per soup")
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 48, "grid height in cells")
	seeds := flag.Int("seeds", 8, "soups per density and edge policy")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	debug := flag.Bool("debug", false, "log every finished soup")
	flag.Parse()

	logger := logging.New(os.Stderr, *debug)

	var soups []soup
	for _, edge := range []core.EdgePolicy{core.Bounded, core.Toroidal} {
		for _, density := range []float64{0.1, 0.25, 0.4, 0.6} {
			for seed := 1; seed <= *seeds; seed++ {
				soups = append(soups, soup{edge: edge, density: density, seed: int64(seed)})
			}
		}
	}

	fmt.Printf("Running %d soups on %dx%d (%d workers, %d steps)\n", len(soups), *width, *height, *workers, *steps)
	start := time.Now()
	all := runAll(soups, *width, *height, *steps, *workers, logger)

	sort.Slice(all, func(i, j int) bool {
		if all[i].settledAt != all[j].settledAt {
			return settleKey(all[i]) > settleKey(all[j])
		}
		return all[i].peak > all[j].peak
	})

	fmt.Printf("\nLongest-lived soups (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		r := all[i]
		settled := "never"
		if r.settledAt >= 0 {
			settled = fmt.Sprintf("gen %d (period %d)", r.settledAt, r.period)
		}
		fmt.Printf("%2d) settled=%s pop %d -> %d peak=%d %s\n", i+1, settled, r.initial, r.final, r.peak, r.soup)
	}
}

func settleKey(r soupResult) int {
	if r.settledAt < 0 {
		return int(^uint(0) >> 1)
	}
	return r.settledAt
}

func runAll(soups []soup, w, h, steps, workers int, logger *log.Logger) []soupResult {
	jobs := make(chan soup)
	results := make(chan soupResult)
	var wg sync.WaitGroup

	for i := 0; i < max(workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				res := runSoup(s, w, h, steps)
				logger.Debug("soup done", "soup", s, "settled", res.settledAt, "final", res.final)
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range soups {
			jobs <- s
		}
		close(jobs)
	}()

	var all []soupResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

// runSoup evolves one random soup and detects when it becomes a still life
// or a period-2 oscillator.
func runSoup(s soup, w, h, steps int) soupResult {
	cfg := life.DefaultConfig()
	cfg.Edge = s.edge
	cfg.Density = s.density
	e := life.NewEngine(cfg)
	e.ResizeGrid(w, h)
	e.Randomize(s.seed)

	res := soupResult{soup: s, initial: e.Grid().Population(), settledAt: -1}
	res.peak = res.initial
	prev1 := slices.Clone(e.Grid().Cells())
	var prev2 []core.Cell
	for i := 0; i < steps; i++ {
		e.StepOnce()
		cells := e.Grid().Cells()
		res.peak = max(res.peak, e.Grid().Population())
		switch {
		case slices.Equal(cells, prev1):
			res.settledAt, res.period = i, 1
		case slices.Equal(cells, prev2):
			res.settledAt, res.period = i, 2
		}
		if res.settledAt >= 0 {
			break
		}
		prev2 = prev1
		prev1 = slices.Clone(cells)
	}
	res.final = e.Grid().Population()
	res.generation = e.Generation()
	return res
}
