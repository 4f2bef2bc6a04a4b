package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawl/internal/fight"
)

var (
	flagMatches  int
	flagMaxTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless matches",
	Long: `Run matches without a terminal UI at the configured arena size.

Time advances one tick interval per tick, so a match takes as long as
the CPU needs rather than real time. Combat events are logged at debug
level; each finished match prints one summary line.

Examples:
  brawl sim
  brawl sim --matches 100 --seed 7
  brawl sim --max-ticks 600 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMatches, "matches", 1, "Number of matches to run")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Stop a match after this many ticks (0 = no limit)")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg, "brawl-sim")

	if flagMatches < 1 {
		fail("--matches must be at least 1")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	arena := fight.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	rng := fight.NewRand(seed())
	match := fight.NewMatch(rng, fight.WithSink(eventLogger(logger)))
	setups := configSetups(cfg)

	wins := [3]int{} // no result, fighter 1, fighter 2
	var names [2]string
	for i := range flagMatches {
		if _, err := match.Start(setups, arena, 0); err != nil {
			fail("%v", err)
		}
		f1, f2 := match.Frame().Fighters[0], match.Frame().Fighters[1]
		names = [2]string{f1.Name, f2.Name}
		logger.Debug("match started", "match", match.ID(),
			"f1", statLine(f1), "f2", statLine(f2))

		clock := fight.NewStepClock(fight.TickInterval(cfg.TickRate))
		res, err := fight.Run(ctx, match, clock, flagMaxTicks)
		if err != nil {
			logger.Warn("simulation interrupted", "match", res.MatchID, "ticks", res.Ticks)
			printSummary(i+1, res)
			break
		}

		printSummary(i+1, res)
		if res.HasWin {
			wins[res.Winner.ID]++
		} else {
			wins[0]++
		}
		match.Restart()
	}

	if flagMatches > 1 {
		fmt.Println()
		fmt.Printf("%s: %d  %s: %d  no result: %d\n", names[0], wins[1], names[1], wins[2], wins[0])
	}
}

// eventLogger logs each new match message as it appears.
func eventLogger(logger *log.Logger) fight.Sink {
	last := ""
	return fight.SinkFunc(func(fr fight.Frame) {
		if fr.Message == last {
			return
		}
		last = fr.Message
		logger.Debug(fr.Message, "match", fr.MatchID, "tick", fr.Tick)
	})
}

func statLine(s fight.FighterSnapshot) string {
	return fmt.Sprintf("%s STR %d DEF %d SPD %d HP %.0f", s.Name, s.Strength, s.Defense, s.Speed, s.MaxHealth)
}

func printSummary(n int, res fight.Result) {
	outcome := "no winner"
	if res.HasWin {
		outcome = fmt.Sprintf("%s wins", res.Winner.Name)
	}
	fmt.Printf("Match %3d  %-24s  by %-9s  %6d ticks  %8s\n",
		n, outcome, res.Reason, res.Ticks, res.Elapsed.Round(time.Millisecond))
}
