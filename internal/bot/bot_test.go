package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/game"
	"github.com/teemoo7/jass-game/internal/randutil"
)

// seats holds a bot (a) with teammate b against c and d. Seating is a, c, b, d.
type seats struct {
	a, b, c, d *game.Player
}

func newSeats() seats {
	return seats{
		a: game.NewBot("A", game.LevelHard),
		b: game.NewBot("B", game.LevelHard),
		c: game.NewBot("C", game.LevelHard),
		d: game.NewBot("D", game.LevelHard),
	}
}

type play struct {
	player *game.Player
	card   string
}

func trick(trump deck.Suit, plays ...play) *game.Trick {
	t := game.NewTrick(trump)
	for _, p := range plays {
		t.Add(p.player, deck.MustParseCards(p.card)[0])
	}
	return t
}

// turnFor builds the state for player a. Trump was named by the decider's
// teammate after a pass.
func turnFor(s seats, current *game.Trick, hand string, decider *game.Player, history ...*game.Trick) game.TurnState {
	cards := deck.MustParseCards(hand)
	return game.TurnState{
		Player:       s.a,
		Teammate:     s.b,
		Opponents:    [2]*game.Player{s.c, s.d},
		Hand:         cards,
		Allowed:      game.LegalCards(cards, current),
		Trump:        current.Trump,
		TrumpDecider: decider,
		TrumpChooser: teammateOf(s, decider),
		Trick:        current,
		PlayedTricks: history,
		TrickNumber:  len(history) + 1,
		RoundNumber:  1,
	}
}

func teammateOf(s seats, p *game.Player) *game.Player {
	switch p {
	case s.a:
		return s.b
	case s.b:
		return s.a
	case s.c:
		return s.d
	default:
		return s.c
	}
}

func newTestBot(level game.Level) *Bot {
	return NewBot(level, randutil.New(1), log.New(io.Discard))
}

func card(s string) deck.Card {
	return deck.MustParseCards(s)[0]
}

func TestLastToPlaySmearsTenOnTeammateTrick(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "S6"}, play{s.b, "SA"}, play{s.d, "S7"})
	state := turnFor(s, current, "S10 H6 D8", s.c)

	for _, level := range []game.Level{game.LevelEasy, game.LevelMedium, game.LevelHard} {
		decision, err := newTestBot(level).ChooseCard(state)
		require.NoError(t, err)
		assert.Equal(t, card("S10"), decision.Card, level.String())
		assert.Contains(t, decision.Reasoning, "Teammate B")
	}
}

func TestLastToPlaySmearsTrumpTenOnTrumpLead(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "H6"}, play{s.b, "HJ"}, play{s.d, "H7"})
	state := turnFor(s, current, "HK H10 D6", s.c)

	decision, err := newTestBot(game.LevelEasy).ChooseCard(state)
	require.NoError(t, err)
	assert.Equal(t, card("H10"), decision.Card)
}

func TestLastToPlayBeatsWinnerWithMostValuableCard(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "S6"}, play{s.b, "S7"}, play{s.d, "SQ"})
	state := turnFor(s, current, "SA SK S8 D6", s.c)

	decision, err := newTestBot(game.LevelEasy).ChooseCard(state)
	require.NoError(t, err)
	assert.Equal(t, card("SA"), decision.Card)
}

func TestLastToPlayDumpsCheapestCard(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "S6"}, play{s.b, "S7"}, play{s.d, "SK"})
	state := turnFor(s, current, "D10 C8 D6 H6", s.c)

	decision, err := newTestBot(game.LevelEasy).ChooseCard(state)
	require.NoError(t, err)
	assert.Equal(t, card("D6"), decision.Card)
	assert.Contains(t, decision.Reasoning, "dumping")
}

func TestMediumTrumpsValuableTrick(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "SA"})
	state := turnFor(s, current, "D6 HJ H6", s.c)

	decision, err := newTestBot(game.LevelMedium).ChooseCard(state)
	require.NoError(t, err)
	assert.Equal(t, card("H6"), decision.Card)
}

func TestMediumKeepsTrumpForCheapTrick(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "S6"})
	state := turnFor(s, current, "D6 HJ H6", s.c)

	for seed := int64(1); seed <= 10; seed++ {
		b := NewBot(game.LevelMedium, randutil.New(seed), log.New(io.Discard))
		decision, err := b.ChooseCard(state)
		require.NoError(t, err)
		assert.Contains(t, state.Allowed, decision.Card)
		assert.Contains(t, decision.Reasoning, "at random")
	}
}

func TestHardCashesSuitOpponentsAreOutOf(t *testing.T) {
	s := newSeats()
	history := trick(deck.Hearts, play{s.b, "D6"}, play{s.d, "C7"}, play{s.a, "D7"}, play{s.c, "S8"})
	current := game.NewTrick(deck.Hearts)
	state := turnFor(s, current, "C6 DK DA", s.c, history)

	decision, err := newTestBot(game.LevelHard).ChooseCard(state)
	require.NoError(t, err)
	assert.Equal(t, card("DA"), decision.Card)
}

func TestHardPullsTrumpsAsDecider(t *testing.T) {
	s := newSeats()
	current := game.NewTrick(deck.Hearts)
	state := turnFor(s, current, "H6 HJ D7", s.a)
	require.Equal(t, s.b, state.TrumpChooser, "A passed, B named trump")

	decision, err := newTestBot(game.LevelHard).ChooseCard(state)
	require.NoError(t, err)
	assert.Equal(t, card("HJ"), decision.Card)
	assert.Contains(t, decision.Reasoning, "pulling trumps")

	// Opponents showed they are out of trump
	history := trick(deck.Hearts, play{s.b, "H9"}, play{s.d, "C7"}, play{s.a, "H7"}, play{s.c, "S8"})
	state = turnFor(s, current, "H6 HJ D7", s.a, history)
	decision, err = newTestBot(game.LevelHard).ChooseCard(state)
	require.NoError(t, err)
	assert.Contains(t, decision.Reasoning, "at random")
}

func TestHardDoesNotPullTrumpsNamedAfterPass(t *testing.T) {
	s := newSeats()
	current := game.NewTrick(deck.Hearts)

	// B decided and passed, A named trump but leads only by chance
	state := turnFor(s, current, "H6 HJ D7", s.b)
	require.Equal(t, s.a, state.TrumpChooser)

	for seed := int64(1); seed <= 10; seed++ {
		b := NewBot(game.LevelHard, randutil.New(seed), log.New(io.Discard))
		decision, err := b.ChooseCard(state)
		require.NoError(t, err)
		assert.Contains(t, decision.Reasoning, "at random")
	}
}

func TestStupidBotPlaysRandomLegalCards(t *testing.T) {
	s := newSeats()
	current := trick(deck.Hearts, play{s.c, "S6"}, play{s.b, "SA"}, play{s.d, "S7"})
	state := turnFor(s, current, "S10 SK H6 D8", s.c)

	seen := make(map[deck.Card]bool)
	b := newTestBot(game.LevelStupid)
	for range 50 {
		decision, err := b.ChooseCard(state)
		require.NoError(t, err)
		assert.Contains(t, state.Allowed, decision.Card)
		seen[decision.Card] = true
	}
	assert.Greater(t, len(seen), 1, "random choice should vary")
}

func TestChooseCardWithoutAllowedCards(t *testing.T) {
	s := newSeats()
	state := turnFor(s, game.NewTrick(deck.Hearts), "", s.a)
	_, err := newTestBot(game.LevelHard).ChooseCard(state)
	assert.ErrorIs(t, err, ErrNoAllowedCards)
}

func TestChooseTrump(t *testing.T) {
	s := newSeats()
	b := newTestBot(game.LevelMedium)

	choice, err := b.ChooseTrump(game.TrumpState{
		Player: s.a, Teammate: s.b, CanPass: true,
		Hand: deck.MustParseCards("HJ H9 HA C6 C7 D6 D7 S6 S7"),
	})
	require.NoError(t, err)
	assert.False(t, choice.Pass)
	assert.Equal(t, deck.Hearts, choice.Suit)

	weak := deck.MustParseCards("H6 H7 H8 C6 C7 D6 D7 S6 S7")
	choice, err = b.ChooseTrump(game.TrumpState{Player: s.a, Teammate: s.b, CanPass: true, Hand: weak})
	require.NoError(t, err)
	assert.True(t, choice.Pass)

	choice, err = b.ChooseTrump(game.TrumpState{Player: s.b, Teammate: s.a, CanPass: false, Hand: weak})
	require.NoError(t, err)
	assert.False(t, choice.Pass)
	assert.Equal(t, deck.Hearts, choice.Suit)
}

func TestLevelRuleSets(t *testing.T) {
	assert.Empty(t, rulesFor(game.LevelStupid))
	assert.Len(t, rulesFor(game.LevelEasy), 2)
	assert.Len(t, rulesFor(game.LevelMedium), 3)
	assert.Len(t, rulesFor(game.LevelHard), 5)
}

func TestBotsPlayFullGames(t *testing.T) {
	for _, level := range []game.Level{game.LevelStupid, game.LevelEasy, game.LevelMedium, game.LevelHard} {
		t.Run(level.String(), func(t *testing.T) {
			teams := [2]*game.Team{
				game.NewTeam("Team 1", game.NewBot("A", level), game.NewBot("B", level)),
				game.NewTeam("Team 2", game.NewBot("C", game.LevelEasy), game.NewBot("D", game.LevelEasy)),
			}
			g, err := game.NewGame("bots", teams, game.ModeNormal)
			require.NoError(t, err)

			logger := log.New(io.Discard)
			engine, err := game.NewEngine(g, NewAgents(g, 99, logger), randutil.New(99), logger)
			require.NoError(t, err)

			winner, err := engine.Run()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, g.Score(winner), g.TargetScore())
		})
	}
}
