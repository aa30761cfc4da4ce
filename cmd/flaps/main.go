// flaps is a terminal obstacle-dodging game: flap a body through a stream
// of pipes, one key, one score.
//
// Usage:
//
//	flaps play               - Play in the terminal
//	flaps simulate           - Run a headless deterministic session
//	flaps config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Custom YAML configuration
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gaps
//	--log-file <path> - Write logs to a file while playing
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flaps",
	Short: "Flaps - dodge pipes in your terminal",
	Long: `Flaps is a terminal take on the one-button pipe dodger.
Flap through the gaps, every pipe you pass is a point, touching one ends the run.

Available commands:
  play      - Play in the terminal
  simulate  - Headless run for replay checks
  config    - Print the effective configuration

Examples:
  flaps play
  flaps play --seed 42 --mute
  flaps simulate --ticks 3600 --jump-every 18
  flaps config --config ./my-flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play discards logs when unset)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flaps",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogger returns a logger for --log-file, or one writing to fallback
// when the flag is unset. The returned close func is never nil.
func openLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		return newLogger(fallback), func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), f.Close, nil
}

// loadConfig resolves the configuration and reports where it came from.
func loadConfig(logger *log.Logger) (config.Flappy, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Flappy{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// resolveSeed returns --seed, or a time based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
