// Package simulator plays bot-only games in parallel and aggregates their
// outcomes.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/teemoo7/jass-game/internal/bot"
	"github.com/teemoo7/jass-game/internal/game"
	"github.com/teemoo7/jass-game/internal/gameid"
	"github.com/teemoo7/jass-game/internal/randutil"
	"github.com/teemoo7/jass-game/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrHumanSeat is returned when a lineup contains a human player
var ErrHumanSeat = errors.New("simulations need bots in every seat")

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Workers int // 0 means one per CPU
	Seed    int64
	Mode    game.Mode
	Timeout time.Duration // Per game, 0 disables the limit
	Logger  *log.Logger

	// Teams builds a fresh lineup for every game
	Teams func() ([2]*game.Team, error)
}

// Simulator runs Jass game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run plays all games and returns their statistics. Games are independent:
// game i is seeded from the base seed and i only, so results do not depend on
// the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games < 1 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}

	results := make([]statistics.GameResult, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGameWithTimeout(ctx, randutil.Derive(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGameWithTimeout runs a single game with timeout protection
func (s *Simulator) playGameWithTimeout(ctx context.Context, seed int64) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	type outcome struct {
		result statistics.GameResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := s.PlayGame(seed)
		done <- outcome{result, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return statistics.GameResult{}, fmt.Errorf("game timed out (seed: %d): %w", seed, ctx.Err())
	}
}

// PlayGame plays one complete game from seed
func (s *Simulator) PlayGame(seed int64) (statistics.GameResult, error) {
	teams, err := s.config.Teams()
	if err != nil {
		return statistics.GameResult{}, err
	}
	for _, t := range teams {
		for _, p := range t.Players() {
			if p.IsHuman() {
				return statistics.GameResult{}, fmt.Errorf("%w: %s", ErrHumanSeat, p.Name)
			}
		}
	}

	id := gameid.FromSeed(seed)
	g, err := game.NewGame(id, teams, s.config.Mode)
	if err != nil {
		return statistics.GameResult{}, err
	}

	logger := s.config.Logger.With("game", gameid.Short(id))
	engine, err := game.NewEngine(g, bot.NewAgents(g, seed, logger), randutil.New(seed), logger)
	if err != nil {
		return statistics.GameResult{}, err
	}

	winner, err := engine.Run()
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("failed to play game %s: %w", id, err)
	}

	result := statistics.GameResult{
		GameID: id,
		Seed:   seed,
		Rounds: len(g.Rounds()),
	}
	for i, t := range g.Teams {
		result.Scores[i] = g.Score(t)
		if t == winner {
			result.Winner = i
		}
	}
	for _, r := range g.Rounds() {
		for _, pm := range r.DefinitiveMelds() {
			if r.TeamOf(pm.Player) == g.Teams[0] {
				result.MeldPoints[0] += pm.Meld.Points
			} else {
				result.MeldPoints[1] += pm.Meld.Points
			}
		}
	}

	logger.Debug("Game finished", "winner", winner.Name, "rounds", result.Rounds, "scores", result.Scores)
	return result, nil
}
