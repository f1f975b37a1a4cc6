package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/teemoo7/jass-game/internal/bot"
	"github.com/teemoo7/jass-game/internal/config"
	"github.com/teemoo7/jass-game/internal/game"
	"github.com/teemoo7/jass-game/internal/gameid"
	"github.com/teemoo7/jass-game/internal/randutil"
	"github.com/teemoo7/jass-game/internal/tui"
)

type PlayCmd struct {
	Mode     string `help:"Game mode: normal or doubled-spades (overrides config)"`
	Seed     int64  `help:"RNG seed, 0 for random (overrides config)"`
	BotDelay string `name:"bot-delay" help:"Pause before each bot decision, e.g. 500ms (overrides config)"`
	LogLevel string `name:"log-level" help:"Log level (overrides config)"`
	LogFile  string `name:"log-file" help:"Log file path (overrides config)"`
	NoColor  bool   `name:"no-color" help:"Disable colored output"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.BotDelay != "" {
		cfg.UI.BotDelay = c.BotDelay
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoColor {
		color := false
		cfg.UI.Color = &color
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The terminal belongs to the game, logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.NewWithOptions(logFile, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
	})
	tui.SetColor(*cfg.UI.Color)

	teams, err := cfg.BuildTeams(false)
	if err != nil {
		return err
	}
	seed := randutil.Resolve(cfg.Game.Seed)
	g, err := game.NewGame(gameid.Generate(), teams, cfg.Mode())
	if err != nil {
		return err
	}
	logger = logger.With("game", gameid.Short(g.ID))
	logger.Info("Starting game", "mode", g.Mode, "seed", seed, "config", cli.Config)

	clock := quartz.NewReal()
	agents := bot.NewAgents(g, seed, logger)
	for p, a := range agents {
		agents[p] = tui.NewPacedAgent(a, cfg.BotDelay(), clock)
	}
	for _, p := range g.Players() {
		if p.IsHuman() {
			agents[p] = tui.NewHumanAgent(os.Stdin, os.Stdout, logger)
		}
	}

	engine, err := game.NewEngine(g, agents, randutil.New(seed), logger)
	if err != nil {
		return err
	}
	engine.EventBus().Subscribe(tui.NewObserver(os.Stdout, g))

	winner, err := engine.Run()
	if errors.Is(err, tui.ErrAborted) {
		logger.Info("Game aborted by player")
		fmt.Println("Game aborted.")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Game over", "winner", winner.Name, "rounds", len(g.Rounds()))
	return nil
}
