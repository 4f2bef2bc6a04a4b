package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawl/internal/config"
	"github.com/vovakirdan/tui-brawl/internal/fight"
	"github.com/vovakirdan/tui-brawl/internal/platform/tui"
	"github.com/vovakirdan/tui-brawl/internal/storage"
)

var (
	flagName1  string
	flagImage1 string
	flagName2  string
	flagImage2 string
	flagRoster string
)

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Set up two fighters and watch them fight",
	Long: `Open the setup form, then run the match live in the terminal.

The form is prefilled from the config file, then from saved roster
profiles (--roster), then from the name/image flags.

Controls:
  Tab/Shift+Tab  - Move between fields
  Enter          - Start the match
  P              - Pause
  Esc            - Stop the match
  R              - Rematch (after the match ends)
  Q/Ctrl+C       - Quit

Examples:
  brawl fight
  brawl fight --name1 Rocky --name2 Drago
  brawl fight --name1 Rocky --image1 ./rocky.png
  brawl fight --roster rocky,drago`,
	Args: cobra.NoArgs,
	Run:  runFight,
}

func init() {
	fightCmd.Flags().StringVar(&flagName1, "name1", "", "Fighter 1 name")
	fightCmd.Flags().StringVar(&flagImage1, "image1", "", "Fighter 1 image reference")
	fightCmd.Flags().StringVar(&flagName2, "name2", "", "Fighter 2 name")
	fightCmd.Flags().StringVar(&flagImage2, "image2", "", "Fighter 2 image reference")
	fightCmd.Flags().StringVar(&flagRoster, "roster", "", "Two saved profile names, comma separated")
}

func runFight(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	setups := configSetups(cfg)

	if flagRoster != "" {
		names := strings.Split(flagRoster, ",")
		if len(names) != 2 {
			fail("--roster takes exactly two profile names, got %d", len(names))
		}
		fromRoster, err := rosterSetups(cfg, names[0], names[1])
		if err != nil {
			fail("%v", err)
		}
		setups = fromRoster
	}

	overrideSetup(&setups[0], flagName1, flagImage1)
	overrideSetup(&setups[1], flagName2, flagImage2)

	startFight(cfg, setups)
}

func overrideSetup(s *fight.FighterSetup, name, image string) {
	if name != "" {
		s.Name = name
	}
	if image != "" {
		s.ImageRef = image
	}
}

// rosterSetups loads two saved profiles by name.
func rosterSetups(cfg config.Config, name1, name2 string) ([2]fight.FighterSetup, error) {
	var setups [2]fight.FighterSetup

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return setups, err
	}
	defer store.Close()

	for i, name := range []string{name1, name2} {
		p, err := store.Profile(strings.TrimSpace(name))
		if err != nil {
			return setups, err
		}
		if p == nil {
			return setups, fmt.Errorf("no saved fighter named %q (see 'brawl roster list')", name)
		}
		setups[i] = fight.FighterSetup{Name: p.Name, ImageRef: p.Image}
	}
	return setups, nil
}

// startFight runs the interactive match screen.
func startFight(cfg config.Config, setups [2]fight.FighterSetup) {
	opts := tui.Options{
		Config: runtimeConfig(cfg),
		Setups: setups,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}
}
