// pigpong bounces a pig between two paddle gates in your terminal.
//
// Usage:
//
//	pigpong play        - Play at a local terminal
//	pigpong serve       - Start SSH server for remote play
//	pigpong simulate    - Play headless matches and print a summary
//	pigpong config      - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML configuration
//	--difficulty <preset> - Computer paddle preset: easy, normal, hard
//	--log <path>          - Write logs to a file
//	--debug               - Log every game event
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pigpong/internal/config"
	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pigpong",
	Short: "Pig Pong - bounce a pig between two gates",
	Long: `Pig Pong is a two-sided paddle game played in the terminal.

Grab a gate with the mouse (or press w/s or up/down) to take that side;
the computer plays any side nobody claims. First to eleven wins.

Available commands:
  play      - Play at this terminal
  serve     - Start SSH server for remote play
  simulate  - Play headless matches against the computer
  config    - Print the default configuration

Examples:
  pigpong play
  pigpong play --difficulty hard
  pigpong serve --ssh :2222
  pigpong simulate --matches 20 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadParams resolves the configuration and difficulty flags.
func loadParams() (pigpong.Params, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return pigpong.Params{}, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return pigpong.Params{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	return pigpong.NewParams(cfg), nil
}

// newLogger creates a logger writing to the --log file when set, else to
// fallback. The returned closer releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
