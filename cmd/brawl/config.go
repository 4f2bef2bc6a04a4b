package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration brawl would run with, after flag overrides.

Config files are searched in order:
  1. --config path
  2. ~/.brawl/brawl.yaml
  3. ./configs/brawl.yaml
  4. built-in defaults

Redirect the output to start a config file of your own:
  brawl config > ~/.brawl/brawl.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("# source: %s\n", cfg.Source)
	fmt.Print(string(data))
}
