// Command sandtris-sweep plays many seeded boards with random input and
// reports how long each takes to stack up to the top.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"sandtris/internal/board"
	"sandtris/internal/core"
	"sandtris/internal/input"
	pcore "sandtris/pkg/core"
)

type paramSet struct {
	width     int
	height    int
	seed      int64
	moveRatio float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("%dx%d seed=%d moves=%.2f", p.width, p.height, p.seed, p.moveRatio)
}

type scenarioResult struct {
	params      paramSet
	topped      bool
	toppedAt    uint64
	stats       board.Stats
	peakHeight  int
	longestSand int
	blocks      int
}

func main() {
	steps := flag.Int("steps", 5000, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 16, "seeds per board size")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	sizes := []struct{ w, h int }{{6, 12}, {10, 20}, {16, 24}}
	moveOptions := []float64{0, 0.5, 2}

	var sets []paramSet
	for _, size := range sizes {
		for _, moves := range moveOptions {
			for s := 0; s < *seeds; s++ {
				sets = append(sets, paramSet{width: size.w, height: size.h, seed: int64(s), moveRatio: moves})
			}
		}
	}

	fmt.Printf("Sweeping %d boards (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return survival(all[i]) > survival(all[j]) })

	fmt.Printf("\nLongest runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		printResult(i+1, all[i])
	}
	fmt.Printf("\nShortest runs:\n")
	for i := max(len(all)-5, 0); i < len(all); i++ {
		printResult(i+1, all[i])
	}
}

func printResult(rank int, res scenarioResult) {
	top := "never"
	if res.topped {
		top = fmt.Sprintf("%d", res.toppedAt)
	}
	fmt.Printf("%3d) topped=%s spawns=%d landed=%d peak=%d sand=%d blocks=%d params=%s\n",
		rank, top, res.stats.Spawns, res.stats.Dismantles, res.peakHeight, res.longestSand, res.blocks, res.params)
}

func survival(res scenarioResult) uint64 {
	if !res.topped {
		return ^uint64(0)
	}
	return res.toppedAt
}

// topRow is the highest row a piece can settle in: every piece moves down
// once before it can break apart.
const topRow = 1

func runScenario(params paramSet, steps int) scenarioResult {
	g, err := core.NewGrid(params.width, params.height)
	if err != nil {
		return scenarioResult{params: params}
	}
	b, err := board.NewSeeded(g, params.seed)
	if err != nil {
		return scenarioResult{params: params}
	}
	rng := pcore.NewRNG(params.seed + 1)
	moves := []input.Command{input.Left, input.Right, input.Rotate}

	res := scenarioResult{params: params}
	sand := 0
	for step := 0; step < steps; step++ {
		for rng.Float64() < params.moveRatio/(1+params.moveRatio) {
			input.Apply(b, moves[rng.IntN(len(moves))])
		}
		b.Advance()

		if b.State() == board.Resolving {
			sand++
			res.longestSand = max(res.longestSand, sand)
		} else {
			sand = 0
		}

		settled := b.Settled()
		res.peakHeight = max(res.peakHeight, stackHeight(settled))
		if !res.topped && rowOccupied(settled, topRow) {
			res.topped = true
			res.toppedAt = b.Stats().Ticks
			break
		}
	}
	res.stats = b.Stats()
	res.blocks = b.Settled().Count()
	return res
}

// stackHeight is the number of rows from the floor up to the highest
// settled block.
func stackHeight(g core.Grid) int {
	for row := 0; row < g.Height(); row++ {
		if rowOccupied(g, row) {
			return g.Height() - row
		}
	}
	return 0
}

func rowOccupied(g core.Grid, row int) bool {
	for col := 0; col < g.Width(); col++ {
		if g.At(row, col).Occupied {
			return true
		}
	}
	return false
}
