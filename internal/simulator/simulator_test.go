package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teemoo7/jass-game/internal/game"
)

func botTeams(level1, level2 game.Level) func() ([2]*game.Team, error) {
	return func() ([2]*game.Team, error) {
		return [2]*game.Team{
			game.NewTeam("Team 1", game.NewBot("A", level1), game.NewBot("B", level1)),
			game.NewTeam("Team 2", game.NewBot("C", level2), game.NewBot("D", level2)),
		}, nil
	}
}

func TestRunAggregatesGames(t *testing.T) {
	sim := New(Config{
		Games:   6,
		Workers: 3,
		Seed:    12345,
		Mode:    game.ModeNormal,
		Timeout: 30 * time.Second,
		Teams:   botTeams(game.LevelHard, game.LevelStupid),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Games)
	assert.Equal(t, 6, stats.Teams[0].Wins+stats.Teams[1].Wins)
	assert.GreaterOrEqual(t, stats.AverageRounds(), 1.0)
	assert.GreaterOrEqual(t, stats.ShortestGame, 1)
	require.NoError(t, stats.Validate())
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) []float64 {
		sim := New(Config{
			Games:   5,
			Workers: workers,
			Seed:    99,
			Mode:    game.ModeDoubledSpades,
			Teams:   botTeams(game.LevelMedium, game.LevelEasy),
		})
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats.Values
	}

	assert.Equal(t, run(1), run(4))
}

func TestPlayGameWinnerReachesTarget(t *testing.T) {
	sim := New(Config{Games: 1, Seed: 7, Mode: game.ModeNormal, Teams: botTeams(game.LevelHard, game.LevelHard)})

	result, err := sim.PlayGame(7)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Scores[result.Winner], game.ModeNormal.TargetScore())
	assert.NotEmpty(t, result.GameID)
	assert.Equal(t, int64(7), result.Seed)

	again, err := sim.PlayGame(7)
	require.NoError(t, err)
	assert.Equal(t, result, again, "same seed replays the same game")
}

func TestRejectsHumanSeats(t *testing.T) {
	sim := New(Config{
		Games: 1,
		Teams: func() ([2]*game.Team, error) {
			return [2]*game.Team{
				game.NewTeam("Team 1", game.NewHuman("Me"), game.NewBot("B", game.LevelEasy)),
				game.NewTeam("Team 2", game.NewBot("C", game.LevelEasy), game.NewBot("D", game.LevelEasy)),
			}, nil
		},
	})

	_, err := sim.Run(context.Background())
	assert.ErrorIs(t, err, ErrHumanSeat)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{Games: 3, Workers: 1, Teams: botTeams(game.LevelEasy, game.LevelEasy)})
	_, err := sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsZeroGames(t *testing.T) {
	_, err := New(Config{Teams: botTeams(game.LevelEasy, game.LevelEasy)}).Run(context.Background())
	assert.Error(t, err)
}
