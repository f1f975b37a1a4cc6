// Package config loads game, table and interface settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/teemoo7/jass-game/internal/game"
)

const (
	DefaultMode     = "normal"
	DefaultBotDelay = "800ms"
	DefaultLogLevel = "info"
	DefaultLogFile  = "jass.log"
	DefaultGames    = 100
	DefaultStandIn  = "hard"
)

// Config represents a complete configuration file. Blocks are optional; Load
// fills in defaults for anything missing.
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	Teams      []TeamConfig        `hcl:"team,block"`
	UI         *UISettings         `hcl:"ui,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings selects the rules variant and random seed
type GameSettings struct {
	Mode string `hcl:"mode,optional"`
	Seed int64  `hcl:"seed,optional"` // 0 picks a time based seed
}

// TeamConfig defines a team of exactly two players. The first team's first
// player sits at the bottom of the table.
type TeamConfig struct {
	Name    string         `hcl:"name,label"`
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig defines a seat
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Kind  string `hcl:"kind,optional"`
	Level string `hcl:"level,optional"`
}

// UISettings controls the terminal interface of the play command
type UISettings struct {
	BotDelay string `hcl:"bot_delay,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    *bool  `hcl:"color,optional"`
}

// SimulationSettings controls batch bot games
type SimulationSettings struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"` // 0 means one per CPU
	StandIn string `hcl:"stand_in,optional"` // Level of the bot replacing human seats
}

// Default returns the default configuration: you and a partner against two
// bots.
func Default() *Config {
	c := &Config{
		Teams: []TeamConfig{
			{
				Name: "Home",
				Players: []PlayerConfig{
					{Name: "Me", Kind: "human"},
					{Name: "Top", Kind: "bot", Level: "hard"},
				},
			},
			{
				Name: "Visitors",
				Players: []PlayerConfig{
					{Name: "Right", Kind: "bot", Level: "medium"},
					{Name: "Left", Kind: "bot", Level: "medium"},
				},
			},
		},
	}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(config.Teams) == 0 {
		config.Teams = Default().Teams
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Mode == "" {
		c.Game.Mode = DefaultMode
	}

	for i := range c.Teams {
		for j := range c.Teams[i].Players {
			p := &c.Teams[i].Players[j]
			if p.Kind == "" {
				p.Kind = "bot"
			}
			if p.Kind == "bot" && p.Level == "" {
				p.Level = "medium"
			}
		}
	}

	if c.UI == nil {
		c.UI = &UISettings{}
	}
	if c.UI.BotDelay == "" {
		c.UI.BotDelay = DefaultBotDelay
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = DefaultLogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = DefaultLogFile
	}
	if c.UI.Color == nil {
		color := true
		c.UI.Color = &color
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = DefaultGames
	}
	if c.Simulation.StandIn == "" {
		c.Simulation.StandIn = DefaultStandIn
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := game.ParseMode(c.Game.Mode); err != nil {
		return err
	}

	if len(c.Teams) != 2 {
		return fmt.Errorf("exactly two teams must be configured, got %d", len(c.Teams))
	}
	names := make(map[string]bool)
	humans := 0
	for _, team := range c.Teams {
		if len(team.Players) != 2 {
			return fmt.Errorf("team %s: exactly two players required, got %d", team.Name, len(team.Players))
		}
		for _, p := range team.Players {
			if names[p.Name] {
				return fmt.Errorf("player %s: name used twice", p.Name)
			}
			names[p.Name] = true

			switch p.Kind {
			case "human":
				humans++
			case "bot":
				if _, err := game.ParseLevel(p.Level); err != nil {
					return fmt.Errorf("player %s: %w", p.Name, err)
				}
			default:
				return fmt.Errorf("player %s: invalid kind %q", p.Name, p.Kind)
			}
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human player is supported, got %d", humans)
	}

	delay, err := time.ParseDuration(c.UI.BotDelay)
	if err != nil {
		return fmt.Errorf("invalid bot_delay: %w", err)
	}
	if delay < 0 {
		return fmt.Errorf("bot_delay must not be negative")
	}
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation games must be positive")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation workers must not be negative")
	}
	if _, err := game.ParseLevel(c.Simulation.StandIn); err != nil {
		return fmt.Errorf("simulation stand_in: %w", err)
	}

	return nil
}

// Mode returns the parsed game mode
func (c *Config) Mode() game.Mode {
	m, _ := game.ParseMode(c.Game.Mode)
	return m
}

// BotDelay returns the pause before each bot decision in interactive play
func (c *Config) BotDelay() time.Duration {
	d, _ := time.ParseDuration(c.UI.BotDelay)
	return d
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	l, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// BuildTeams creates the configured teams. With botsOnly, human seats are
// taken by stand-in bots.
func (c *Config) BuildTeams(botsOnly bool) ([2]*game.Team, error) {
	var teams [2]*game.Team
	if err := c.Validate(); err != nil {
		return teams, err
	}
	standIn, _ := game.ParseLevel(c.Simulation.StandIn)

	for i, tc := range c.Teams {
		var players [2]*game.Player
		for j, pc := range tc.Players {
			if pc.Kind == "human" && !botsOnly {
				players[j] = game.NewHuman(pc.Name)
				continue
			}
			level := standIn
			if pc.Kind == "bot" {
				level, _ = game.ParseLevel(pc.Level)
			}
			players[j] = game.NewBot(pc.Name, level)
		}
		teams[i] = game.NewTeam(tc.Name, players[0], players[1])
	}
	return teams, nil
}
