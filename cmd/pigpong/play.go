package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pigpong/internal/audio"
	"github.com/vovakirdan/pigpong/internal/core"
	"github.com/vovakirdan/pigpong/internal/platform/tui"
	"github.com/vovakirdan/pigpong/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play at this terminal",
	Long: `Start a Pig Pong table in this terminal.

Controls:
  Mouse      - Press on a gate to take that side, drag to move it
  W/S        - Move the left paddle (first press takes the side)
  Up/Down    - Move the right paddle (first press takes the side)
  P          - Pause
  Q/Ctrl+C   - Quit

Logs go to the --log file; without it they are discarded because the
terminal belongs to the game.

Examples:
  pigpong play
  pigpong play --difficulty easy
  pigpong play --mute --log pigpong.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pigpong", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Muted:    flagMute,
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open match journal", "error", err)
		// Continue without a journal
		store = nil
	} else {
		defer store.Close()
	}

	var sound *audio.SoundManager
	if !cfg.Muted {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		}
		defer sound.Cleanup()
	}

	return tui.Run(tui.Options{
		Params: params,
		Config: cfg,
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})
}
