package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play and simulate would use, as YAML.

The search order is --config, ~/.flaps/flappy.yaml, ./configs/flappy.yaml,
then the built-in defaults. Save the output to start a custom config.

Examples:
  flaps config > ~/.flaps/flappy.yaml
  flaps config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
