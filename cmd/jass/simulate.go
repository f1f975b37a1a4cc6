package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/teemoo7/jass-game/internal/config"
	"github.com/teemoo7/jass-game/internal/game"
	"github.com/teemoo7/jass-game/internal/randutil"
	"github.com/teemoo7/jass-game/internal/simulator"
	"github.com/teemoo7/jass-game/internal/statistics"
)

type SimulateCmd struct {
	Games   int           `help:"Number of games to simulate (overrides config)"`
	Workers int           `help:"Parallel games, 0 for one per CPU (overrides config)"`
	Mode    string        `help:"Game mode: normal or doubled-spades (overrides config)"`
	Seed    int64         `help:"RNG seed, 0 for random (overrides config)"`
	Timeout time.Duration `default:"1m" help:"Per game timeout"`
	Verbose bool          `short:"V" help:"Verbose logging"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := randutil.Resolve(cfg.Game.Seed)
	teams, err := cfg.BuildTeams(true)
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Games:   cfg.Simulation.Games,
		Workers: cfg.Simulation.Workers,
		Seed:    seed,
		Mode:    cfg.Mode(),
		Timeout: c.Timeout,
		Logger:  logger,
		Teams: func() ([2]*game.Team, error) {
			return cfg.BuildTeams(true)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(stats, teams, cfg.Mode(), seed, time.Since(start))
	return nil
}

func printSummary(stats *statistics.Statistics, teams [2]*game.Team, mode game.Mode, seed int64, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS (%s, seed %d) ===\n", mode, seed)
	fmt.Printf("Games played: %d in %s\n", stats.Games, elapsed.Round(time.Millisecond))
	fmt.Printf("Rounds per game: %.2f (min %d, max %d)\n", stats.AverageRounds(), stats.ShortestGame, stats.LongestGame)

	fmt.Printf("\n=== TEAMS ===\n")
	for i, t := range teams {
		fmt.Printf("%s (%s, %s): %d wins (%.1f%%), %.1f meld points per game\n",
			t.Name, t.Player1, t.Player2, stats.Teams[i].Wins, stats.WinRate(i)*100, stats.AverageMelds(i))
	}

	fmt.Printf("\n=== MARGIN (%s minus %s) ===\n", teams[0].Name, teams[1].Name)
	fmt.Printf("Mean: %.1f points\n", stats.Mean())
	fmt.Printf("Median: %.1f points\n", stats.Median())
	fmt.Printf("Std Dev: %.1f points\n", stats.StdDev())
	fmt.Printf("95%% CI: [%.1f, %.1f]\n", low, high)
	fmt.Printf("Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
}
