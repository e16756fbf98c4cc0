package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would start with, after the
search order and the --difficulty preset are applied.

Search order:
  1. --config <path>
  2. ~/.arcade/configs/asteroids.yaml
  3. ./configs/asteroids.yaml
  4. Built-in defaults

The output is valid YAML and can be saved as a starting point:
  asteroids config > ~/.arcade/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.ToYAML()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
