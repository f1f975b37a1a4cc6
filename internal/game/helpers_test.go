package game

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/randutil"
)

// table is the standard test seating: a and b against c and d. Seating order
// is a, c, b, d.
type table struct {
	a, b, c, d *Player
	teams      [2]*Team
}

func newTable() table {
	tb := table{
		a: NewBot("Alice", LevelHard),
		b: NewBot("Bob", LevelHard),
		c: NewBot("Carol", LevelHard),
		d: NewBot("Dave", LevelHard),
	}
	tb.teams = [2]*Team{
		NewTeam("Team 1", tb.a, tb.b),
		NewTeam("Team 2", tb.c, tb.d),
	}
	return tb
}

// riggedRound deals a round and then replaces every hand with fixed cards
func riggedRound(t *testing.T, tb table, mode Mode, decider *Player, hands map[*Player]string) *Round {
	t.Helper()
	r, err := NewRound(1, tb.teams, mode, decider, randutil.New(1))
	require.NoError(t, err)
	for p, cards := range hands {
		r.hands[p] = deck.NewHand(deck.MustParseCards(cards))
	}
	return r
}

// meldHands is a complete deal where every player holds a meld:
// a a three in a row, b four queens, c four jacks and d four aces.
func meldHands(tb table) map[*Player]string {
	return map[*Player]string{
		tb.a: "H6 H7 H8 C6 C7 D6 D7 S6 S7",
		tb.b: "C8 D8 S8 HQ CQ DQ SQ HK CK",
		tb.c: "HJ CJ DJ SJ H9 C9 D9 S9 H10",
		tb.d: "C10 D10 S10 DK SK HA CA DA SA",
	}
}

// firstCardAgent names the strongest trump and always plays its first allowed card
type firstCardAgent struct{}

func (firstCardAgent) ChooseTrump(state TrumpState) (TrumpChoice, error) {
	suit, ok := ComputeBestTrumpSuit(state.Hand, state.CanPass)
	if !ok {
		return TrumpChoice{Pass: true, Reasoning: "weak hand"}, nil
	}
	return TrumpChoice{Suit: suit, Reasoning: "strongest suit"}, nil
}

func (firstCardAgent) ChooseCard(state TurnState) (Decision, error) {
	return Decision{Card: state.Allowed[0], Reasoning: "first allowed"}, nil
}

// eventRecorder captures published events in order
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) ofType(et EventType) []GameEvent {
	var matched []GameEvent
	for _, e := range r.events {
		if e.EventType() == et {
			matched = append(matched, e)
		}
	}
	return matched
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func agentsFor(tb table, agent Agent) map[*Player]Agent {
	return map[*Player]Agent{tb.a: agent, tb.b: agent, tb.c: agent, tb.d: agent}
}

// playRandomRound plays a round to completion with random legal cards
func playRandomRound(t *testing.T, r *Round, seed int64) {
	t.Helper()
	rng := randutil.New(seed)
	for !r.IsComplete() {
		p, ok := r.NextToPlay()
		require.True(t, ok)
		allowed, err := r.AllowedCards(p)
		require.NoError(t, err)
		require.NotEmpty(t, allowed)
		before := len(r.Hand(p))
		require.NoError(t, r.Play(p, randutil.Pick(rng, allowed)))
		require.Len(t, r.Hand(p), before-1)
		if r.CurrentTrick().IsComplete() {
			_, err := r.FinishTrick()
			require.NoError(t, err)
		}
	}
}

func cards(s string) []deck.Card {
	c := deck.MustParseCards(s)
	slices.SortFunc(c, func(x, y deck.Card) int {
		if x.Suit != y.Suit {
			return int(x.Suit) - int(y.Suit)
		}
		return int(x.Rank) - int(y.Rank)
	})
	return c
}

// sorted returns cards in the same canonical order as cards()
func sorted(c []deck.Card) []deck.Card {
	out := slices.Clone(c)
	slices.SortFunc(out, func(x, y deck.Card) int {
		if x.Suit != y.Suit {
			return int(x.Suit) - int(y.Suit)
		}
		return int(x.Rank) - int(y.Rank)
	})
	return out
}
