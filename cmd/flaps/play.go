package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Arkantos123789/Bird-that-flaps/internal/audio"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
	"github.com/Arkantos123789/Bird-that-flaps/internal/games/flappy"
	"github.com/Arkantos123789/Bird-that-flaps/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive session.

Controls:
  Space/Up/W  - Flap (also starts the run)
  P/Esc       - Pause
  R/Enter     - Restart (a second after the run ends)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  flaps play
  flaps play --mute
  flaps play --log-file flaps.log --debug
  flaps play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stdout, so logs go to --log-file or nowhere.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = width
	runtime.ScreenH = height
	runtime.TickRate = flagFPS
	runtime.Seed = resolveSeed()

	sim := flappy.New(cfg, flappy.NewGapTracker(runtime.Seed, cfg.Gaps))
	logger.Info("starting", "seed", runtime.Seed, "fps", runtime.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	opts := tui.Options{
		Runtime:     runtime,
		AutoRestart: cfg.Session.AutoRestart,
		Logger:      logger,
	}

	if !flagMute {
		player := audio.NewPlayer(runtime.Seed)
		if initErr := player.Initialize(); initErr != nil {
			logger.Warn("audio unavailable, playing silent", "error", initErr)
		} else {
			defer player.Cleanup()
			opts.Sound = player
		}
	}

	if err := tui.Run(sim, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	score := sim.Score()
	fmt.Printf("Best score: %d\n", score.Best)
	return nil
}
