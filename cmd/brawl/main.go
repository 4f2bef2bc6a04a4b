// brawl is a terminal exhibition fight simulator: two fighters with rolled
// stats chase, collide and knock each other around until one is knocked out
// or thrown out of the arena.
//
// Usage:
//
//	brawl fight              - Set up two fighters and watch them fight
//	brawl sim                - Run headless matches and print the results
//	brawl roster <command>   - Manage saved fighter profiles
//	brawl serve              - Start SSH server for remote spectators
//	brawl config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible stat rolls
//	--config <path>      - Use a specific brawl.yaml
//	--db <path>          - Set roster database path (default: ~/.brawl/roster.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-brawl/internal/config"
	"github.com/vovakirdan/tui-brawl/internal/core"
	"github.com/vovakirdan/tui-brawl/internal/fight"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brawl",
	Short: "Brawl - watch two fighters slug it out in your terminal",
	Long: `Brawl is a physics-driven exhibition fight simulator for the terminal.

Two fighters get random strength, defense, speed and health. They chase
each other under gravity, collide and trade hits until one is knocked out
or knocked out of the arena.

Available commands:
  fight    - Set up two fighters and watch the match
  sim      - Run headless matches
  roster   - Manage saved fighter profiles
  serve    - Start SSH server for remote spectators
  config   - Print the effective configuration

Examples:
  brawl fight --name1 Rocky --name2 Drago
  brawl fight --roster rocky,drago
  brawl sim --matches 10 --seed 42
  brawl roster add Rocky ./rocky.png
  brawl serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to brawl.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to roster database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(fightCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the process logger at the configured level.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// runtimeConfig derives the per-session settings from the configuration and
// the current terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   cfg.TickRate,
		Seed:       seed(),
		CellWidth:  cfg.Render.CellWidth,
		CellHeight: cfg.Render.CellHeight,
	}
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// configSetups turns the configured default fighters into setups.
func configSetups(cfg config.Config) [2]fight.FighterSetup {
	var setups [2]fight.FighterSetup
	for i := range setups {
		if i < len(cfg.Fighters) {
			setups[i] = fight.FighterSetup{Name: cfg.Fighters[i].Name, ImageRef: cfg.Fighters[i].Image}
		}
	}
	return setups
}
