package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawl/internal/config"
	"github.com/vovakirdan/tui-brawl/internal/fight"
	"github.com/vovakirdan/tui-brawl/internal/platform/tui"
	"github.com/vovakirdan/tui-brawl/internal/storage"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage saved fighter profiles",
	Long: `Save fighters by name so they can be reused in later matches.

Names are matched case-insensitively. Saving an existing name updates
its image reference.

Examples:
  brawl roster add Rocky ./rocky.png
  brawl roster list
  brawl roster rm rocky
  brawl roster browse`,
}

var rosterAddCmd = &cobra.Command{
	Use:   "add <name> [image]",
	Short: "Save or update a fighter profile",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runRosterAdd,
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved fighter profiles",
	Args:  cobra.NoArgs,
	Run:   runRosterList,
}

var rosterRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a fighter profile",
	Args:  cobra.ExactArgs(1),
	Run:   runRosterRm,
}

var rosterBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse profiles and pick two to fight",
	Long: `Open the roster in a table. Pick two fighters with Enter to start a
match with them; press d to delete the selected profile.`,
	Args: cobra.NoArgs,
	Run:  runRosterBrowse,
}

func init() {
	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterRmCmd)
	rosterCmd.AddCommand(rosterBrowseCmd)
}

func openRoster(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening roster database: %v", err)
	}
	return store
}

func runRosterAdd(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openRoster(cfg)
	defer store.Close()

	image := ""
	if len(args) > 1 {
		image = args[1]
	}
	if err := store.SaveProfile(args[0], image); err != nil {
		store.Close()
		fail("%v", err)
	}
	fmt.Printf("Saved %s\n", args[0])
}

func runRosterList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openRoster(cfg)
	defer store.Close()

	profiles, err := store.Profiles()
	if err != nil {
		store.Close()
		fail("retrieving profiles: %v", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No fighters saved yet.")
		fmt.Println()
		fmt.Println("Add one with 'brawl roster add <name> [image]'.")
		return
	}

	fmt.Printf("  %-24s  %-32s  %s\n", "Name", "Image", "Added")
	fmt.Printf("  %-24s  %-32s  %s\n", "----", "-----", "-----")
	for _, p := range profiles {
		image := p.Image
		if image == "" {
			image = "-"
		}
		fmt.Printf("  %-24s  %-32s  %s\n", p.Name, image, p.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runRosterRm(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openRoster(cfg)
	defer store.Close()

	removed, err := store.RemoveProfile(args[0])
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	if !removed {
		store.Close()
		fail("no saved fighter named %q", args[0])
	}
	fmt.Printf("Removed %s\n", args[0])
}

func runRosterBrowse(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openRoster(cfg)

	rc := runtimeConfig(cfg)
	picked, err := tui.RunRoster(store, rc.ScreenW, rc.ScreenH)
	store.Close()
	if err != nil {
		fail("running roster browser: %v", err)
	}

	// Quit without picking two
	if len(picked) < 2 {
		return
	}

	startFight(cfg, [2]fight.FighterSetup{
		{Name: picked[0].Name, ImageRef: picked[0].Image},
		{Name: picked[1].Name, ImageRef: picked[1].Image},
	})
}
