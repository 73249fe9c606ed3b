package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The maximum wall-clock time the soak should run for.")
	games := flag.Int("games", 100, "The number of games to play.")
	seed := flag.Uint64("seed", 1, "The base seed; game n deals with seed+n.")
	memMetrics := flag.Bool("mem-metrics", false, "Enable detailed memory metrics in the report.")
	flag.Parse()

	log.Println("Starting soak run...")

	report := &Report{
		Duration:   *duration,
		Games:      *games,
		Seed:       *seed,
		MemMetrics: *memMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	player := newDriver(*seed)
	startTime := time.Now()

	log.Printf("Playing up to %d games for at most %s...\n", *games, *duration)
	for i := 0; i < *games; i++ {
		gameSeed := *seed + uint64(i)
		g := tetris.NewGame(nil, rand.NewPCG(gameSeed, gameSeed))

		gameStart := time.Now()
		stats, finished := player.playGame(ctx, g)
		report.Record(stats, time.Since(gameStart), finished)

		if !finished {
			log.Printf("Deadline hit during game %d.", i+1)
			break
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize(player)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
