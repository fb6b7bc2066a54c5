// Command forest-sweep runs many seeds of the forest automaton in parallel
// and reports how the populations evolve.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"forest-ca/internal/logs"
	"forest-ca/internal/sims/forest"

	"go.uber.org/zap"
)

type summary struct {
	runs        int
	extinct     int
	settled     int
	meanLiving  float64
	meanMature  float64
	bestLiving  forest.ScenarioResult
	worstLiving forest.ScenarioResult
}

func summarize(results []forest.ScenarioResult) summary {
	s := summary{runs: len(results)}
	if len(results) == 0 {
		return s
	}
	sorted := append([]forest.ScenarioResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Final.Living() != sorted[j].Final.Living() {
			return sorted[i].Final.Living() > sorted[j].Final.Living()
		}
		return sorted[i].Seed < sorted[j].Seed
	})
	s.bestLiving = sorted[0]
	s.worstLiving = sorted[len(sorted)-1]
	for _, r := range results {
		if r.ExtinctAt >= 0 {
			s.extinct++
		}
		if r.SettledAt >= 0 {
			s.settled++
		}
		s.meanLiving += float64(r.Final.Living())
		s.meanMature += float64(r.Final.Mature)
	}
	s.meanLiving /= float64(len(results))
	s.meanMature /= float64(len(results))
	return s
}

func main() {
	seeds := flag.Int("seeds", 64, "number of seeds to run")
	firstSeed := flag.Int64("first-seed", 1, "first seed of the sweep")
	steps := flag.Int("steps", 200, "generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 96, "grid height")
	variant := flag.String("variant", "a", "rule variant (a or b)")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logs.Init("forest-sweep", logs.Config{Level: *logLevel})
	defer logs.Sync()

	v, err := forest.ParseVariant(*variant)
	if err != nil {
		log.Fatal("invalid variant", zap.Error(err))
	}
	cfg := forest.ConfigFor(v)
	cfg.Width = *width
	cfg.Height = *height
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	if *workers <= 0 {
		*workers = 1
	}

	log.Info("sweep started",
		zap.Int("seeds", *seeds),
		zap.Int("steps", *steps),
		zap.Int("workers", *workers),
		zap.String("variant", string(v)),
	)

	jobs := make(chan int64)
	results := make(chan forest.ScenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := forest.RunScenario(cfg, seed, *steps)
				if err != nil {
					log.Error("scenario failed", zap.Int64("seed", seed), zap.Error(err))
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []forest.ScenarioResult
	for res := range results {
		all = append(all, res)
		log.Debug("scenario done",
			zap.Int64("seed", res.Seed),
			zap.Int("living", res.Final.Living()),
			zap.Int("extinct_at", res.ExtinctAt),
		)
	}
	s := summarize(all)

	fmt.Printf("Ran %d seeds in %s\n", s.runs, time.Since(start).Round(time.Millisecond))
	fmt.Printf("extinct=%d settled=%d mean living=%.1f mean mature=%.1f\n", s.extinct, s.settled, s.meanLiving, s.meanMature)
	if s.runs > 0 {
		fmt.Printf("best  seed=%d peak=%d@%d final: %s\n", s.bestLiving.Seed, s.bestLiving.PeakLiving, s.bestLiving.PeakLivingAt, s.bestLiving.Final)
		fmt.Printf("worst seed=%d peak=%d@%d final: %s\n", s.worstLiving.Seed, s.worstLiving.PeakLiving, s.worstLiving.PeakLivingAt, s.worstLiving.Final)
	}
}
