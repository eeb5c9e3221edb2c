package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"life-engine/internal/engine"
	"life-engine/internal/patterns"
)

type options struct {
	rows, cols int
	pattern    string
	seed       int64
	density    float64
	steps      int
	engines    int
	queue      int
	modes      []engine.Mode
	timeout    time.Duration
}

type result struct {
	id      int
	mode    engine.Mode
	steps   int
	wall    time.Duration
	compute time.Duration
	alive   int
	stats   engine.Stats
}

func (r result) String() string {
	mean := time.Duration(0)
	if r.steps > 0 {
		mean = r.compute / time.Duration(r.steps)
	}
	rate := 0.0
	if r.wall > 0 {
		rate = float64(r.steps) / r.wall.Seconds()
	}
	return fmt.Sprintf("engine=%d mode=%-8s steps=%d wall=%v steps/s=%.1f mean=%v alive=%d produced=%d cleared=%d dropped=%d",
		r.id, r.mode, r.steps, r.wall.Round(time.Microsecond), rate, mean, r.alive, r.stats.Produced, r.stats.Cleared, r.stats.Dropped)
}

func main() {
	opts := options{}
	mode := flag.String("mode", "both", "sync, threaded or both")
	flag.IntVar(&opts.rows, "rows", 256, "grid rows")
	flag.IntVar(&opts.cols, "cols", 256, "grid columns")
	flag.StringVar(&opts.pattern, "pattern", "random", "initial pattern name")
	flag.Int64Var(&opts.seed, "seed", 1337, "base seed; engine i uses seed+i")
	flag.Float64Var(&opts.density, "density", 0.3, "live density for the random pattern")
	flag.IntVar(&opts.steps, "steps", 200, "steps to consume per engine")
	flag.IntVar(&opts.engines, "engines", runtime.NumCPU(), "independent engines per mode, run concurrently")
	flag.IntVar(&opts.queue, "queue", engine.DefaultMaxQueueSize, "queue capacity for threaded engines")
	flag.DurationVar(&opts.timeout, "timeout", time.Minute, "abort the run after this long")
	flag.Parse()

	switch *mode {
	case "sync":
		opts.modes = []engine.Mode{engine.Sync}
	case "threaded":
		opts.modes = []engine.Mode{engine.Threaded}
	case "both":
		opts.modes = []engine.Mode{engine.Sync, engine.Threaded}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	results, err := run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stdout, "%dx%d %s, %d steps, %d engines per mode\n", opts.rows, opts.cols, opts.pattern, opts.steps, opts.engines)
	for _, r := range results {
		fmt.Println(r)
	}
}

func run(ctx context.Context, opts options) ([]result, error) {
	if opts.engines <= 0 {
		opts.engines = 1
	}
	var all []result
	for _, mode := range opts.modes {
		results := make([]result, opts.engines)
		eg, ctx := errgroup.WithContext(ctx)
		for i := range results {
			eg.Go(func() error {
				r, err := runOne(ctx, opts, mode, i)
				if err != nil {
					return fmt.Errorf("engine %d (%s): %w", i, mode, err)
				}
				results[i] = r
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

func runOne(ctx context.Context, opts options, mode engine.Mode, id int) (res result, err error) {
	initial, err := patterns.Build(opts.pattern, patterns.Options{
		Rows:    opts.rows,
		Cols:    opts.cols,
		Seed:    opts.seed + int64(id),
		Density: opts.density,
	})
	if err != nil {
		return result{}, err
	}
	eng, err := engine.New(initial, engine.Config{
		MaxQueueSize: opts.queue,
		Threaded:     mode == engine.Threaded,
		Running:      true,
	})
	if err != nil {
		return result{}, err
	}
	defer func() {
		if closeErr := eng.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	res = result{id: id, mode: mode, alive: initial.Alive()}
	start := time.Now()
	for res.steps < opts.steps {
		s, ok := eng.Simulate()
		if !ok {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			runtime.Gosched()
			continue
		}
		res.steps++
		res.compute += s.Duration
		res.alive = s.Grid.Alive()
	}
	res.wall = time.Since(start)
	res.stats = eng.Stats()
	return res, nil
}
