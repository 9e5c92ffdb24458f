package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pigpong/internal/sim"
	"github.com/vovakirdan/pigpong/internal/storage"
)

var (
	flagMatches  int
	flagBotSpeed float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless matches against the computer",
	Long: `Play matches without a terminal. A scripted bot claims the left
paddle and drags it after the pig; the computer plays the right side.
Time advances one frame (1000/fps ms) per step, so a seed always replays
the same matches.

Examples:
  pigpong simulate
  pigpong simulate --matches 50 --seed 7 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMatches, "matches", 5, "Number of matches to play")
	simulateCmd.Flags().Float64Var(&flagBotSpeed, "bot-speed", 0.5, "Bot paddle speed in field units per ms")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagMatches <= 0 {
		return fmt.Errorf("--matches must be positive, got %d", flagMatches)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	params, err := loadParams()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pigpong-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("simulating", "matches", flagMatches, "seed", seed, "fps", flagFPS)

	records, err := sim.Run(sim.Options{
		Params:   params,
		Seed:     seed,
		Matches:  flagMatches,
		FrameMs:  1000 / float64(flagFPS),
		BotSpeed: flagBotSpeed,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	sum, err := store.Summary()
	if err != nil {
		return err
	}

	printResults(os.Stdout, records, sum)
	return nil
}

func printResults(w io.Writer, records []storage.MatchRecord, sum storage.Summary) {
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-5s  %-6s  %s\n", "#", "Winner", "Score", "Hits", "Rally", "Time")
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-5s  %-6s  %s\n", "--", "------", "-----", "----", "-----", "----")
	for i, rec := range records {
		score := fmt.Sprintf("%d:%d", rec.ScoreLeft, rec.ScoreRight)
		dur := (time.Duration(rec.DurationMs) * time.Millisecond).Round(time.Second)
		fmt.Fprintf(w, "  %-4d  %-6s  %-7s  %-5d  %-6d  %s\n", i+1, rec.Winner, score, rec.Hits, rec.LongestRally, dur)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matches: %d  Bot (left) wins: %d  Computer (right) wins: %d\n", sum.Matches, sum.LeftWins, sum.RightWins)
	fmt.Fprintf(w, "Hits: %d  Longest rally: %d  Average match: %s\n", sum.TotalHits, sum.LongestRally,
		(time.Duration(sum.AvgDurationMs) * time.Millisecond).Round(time.Second))
}
