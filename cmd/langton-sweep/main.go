// Command langton-sweep runs the automaton headless over a set of map sizes
// and reports when (and whether) the ant settles into a highway.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/akamensky/argparse"

	"langton-ant/internal/core"
	"langton-ant/internal/sims/langton"
)

// maxCells bounds the grid of a single scenario.
const maxCells = 1 << 26

type scenario struct {
	size core.Size
	seed int64
}

type scenarioResult struct {
	scenario
	start   langton.Ant
	highway langton.HighwayResult
	elapsed time.Duration
}

func main() {
	parser := argparse.NewParser("langton-sweep", "Headless highway detection over several map sizes.")
	sizes := parser.StringList("m", "map-size", &argparse.Options{
		Default: []string{"64x64", "128x128", "256x256", "512x512"},
		Help:    "map size to simulate (WIDTHxHEIGHT, repeatable)",
	})
	seeds := parser.Int("n", "seeds", &argparse.Options{Default: 4, Help: "seeds per map size"})
	steps := parser.Int("t", "steps", &argparse.Options{Default: 30000, Help: "maximum steps per scenario"})
	confirm := parser.Int("k", "confirm", &argparse.Options{Default: 5, Help: "highway periods required to confirm"})
	workers := parser.Int("j", "workers", &argparse.Options{Default: runtime.NumCPU(), Help: "number of worker goroutines"})
	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	if err := checkRun(*seeds, *steps, *confirm); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	scenarios, err := scenariosFor(*sizes, *seeds)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, up to %d steps)\n", len(scenarios), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- run(sc, *steps, *confirm)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.size.W*a.size.H != b.size.W*b.size.H {
			return a.size.W*a.size.H < b.size.W*b.size.H
		}
		return a.seed < b.seed
	})

	fmt.Println()
	fmt.Printf("%-10s %5s %-16s %-10s %8s %8s %10s\n", "map", "seed", "start", "highway", "steps", "black", "elapsed")
	fmt.Println(strings.Repeat("-", 74))
	for _, res := range all {
		onset := "none"
		if res.highway.Found {
			onset = fmt.Sprintf("@%d", res.highway.Onset)
		}
		start := fmt.Sprintf("(%d,%d) %s", res.start.X, res.start.Y, res.start.Dir)
		fmt.Printf("%-10s %5d %-16s %-10s %8d %8d %10s\n",
			fmt.Sprintf("%dx%d", res.size.W, res.size.H), res.seed, start, onset,
			res.highway.Steps, res.highway.Black, res.elapsed.Round(time.Millisecond))
	}
}

func checkRun(seeds, steps, confirm int) error {
	var errs []error
	if seeds < 1 {
		errs = append(errs, fmt.Errorf("invalid seed count %d: must be at least 1", seeds))
	}
	if steps < 0 {
		errs = append(errs, fmt.Errorf("invalid step budget %d: must not be negative", steps))
	}
	if confirm < 1 {
		errs = append(errs, fmt.Errorf("invalid confirm count %d: must be at least 1", confirm))
	}
	return errors.Join(errs...)
}

func scenariosFor(sizes []string, seeds int) ([]scenario, error) {
	var scenarios []scenario
	for _, s := range sizes {
		var w, h int
		if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return nil, fmt.Errorf("invalid map size %q: expected in the format WIDTHxHEIGHT", s)
		}
		if w > maxCells/h {
			return nil, fmt.Errorf("invalid map size %q: more than %d cells", s, maxCells)
		}
		for seed := 1; seed <= seeds; seed++ {
			scenarios = append(scenarios, scenario{size: core.Size{W: w, H: h}, seed: int64(seed)})
		}
	}
	return scenarios, nil
}

func run(sc scenario, steps, confirm int) scenarioResult {
	start := time.Now()
	e := langton.New(sc.size.W, sc.size.H)
	e.Reset(core.NewRNG(sc.seed))
	ant := e.Ant()
	hw := langton.DetectHighway(e, steps, confirm)
	return scenarioResult{scenario: sc, start: ant, highway: hw, elapsed: time.Since(start)}
}
