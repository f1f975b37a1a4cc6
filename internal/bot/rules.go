package bot

import (
	"fmt"

	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/game"
)

// valuableTrick is the trick value from which a bot spends a trump to take it
const valuableTrick = 10

type rule struct {
	name  string
	apply func(state game.TurnState, thinking *ThinkingContext) (deck.Card, bool)
}

var (
	ruleSmearTen      = rule{"smear-ten", smearTen}
	ruleTakeOrDump    = rule{"take-or-dump", takeOrDump}
	ruleTrumpValuable = rule{"trump-valuable", trumpValuableTrick}
	ruleCashVoidSuit  = rule{"cash-void-suit", cashVoidSuit}
	rulePullTrumps    = rule{"pull-trumps", pullTrumps}
)

// levelRules lists each level's rules in cascade order. Stupid bots only
// play at random.
var levelRules = map[game.Level][]rule{
	game.LevelStupid: nil,
	game.LevelEasy:   {ruleSmearTen, ruleTakeOrDump},
	game.LevelMedium: {ruleSmearTen, ruleTakeOrDump, ruleTrumpValuable},
	game.LevelHard:   {ruleSmearTen, ruleTakeOrDump, ruleTrumpValuable, ruleCashVoidSuit, rulePullTrumps},
}

func rulesFor(level game.Level) []rule {
	return levelRules[level]
}

// smearTen gives a Ten to a trick the teammate is already taking
func smearTen(state game.TurnState, thinking *ThinkingContext) (deck.Card, bool) {
	if !state.IsLast() || !state.TeammateWinning() {
		return deck.Card{}, false
	}
	for _, c := range state.Allowed {
		if c.Rank == deck.Ten && c.Suit != state.Trump {
			thinking.AddThought(fmt.Sprintf("Teammate %s takes this trick, adding the %s", state.Teammate, c))
			return c, true
		}
	}
	if lead, _ := state.Trick.LeadSuit(); lead == state.Trump {
		for _, c := range state.Allowed {
			if c.Rank == deck.Ten && c.Suit == state.Trump {
				thinking.AddThought(fmt.Sprintf("Teammate %s takes this trump trick, adding the %s", state.Teammate, c))
				return c, true
			}
		}
	}
	return deck.Card{}, false
}

// takeOrDump closes a trick the opponents hold: beat the winner in its own
// suit if possible, otherwise throw away the cheapest non-trump
func takeOrDump(state game.TurnState, thinking *ThinkingContext) (deck.Card, bool) {
	if !state.IsLast() || state.TeammateWinning() {
		return deck.Card{}, false
	}
	winner, _ := state.Trick.Winner()

	var beaters []deck.Card
	if winner.Card.Suit != state.Trump {
		for _, c := range state.Allowed {
			if c.Suit == winner.Card.Suit && deck.Power(c, false) > deck.Power(winner.Card, false) {
				beaters = append(beaters, c)
			}
		}
	}
	if len(beaters) > 0 {
		best := pick(beaters, func(c, cur deck.Card) bool {
			if deck.Value(c, false) != deck.Value(cur, false) {
				return deck.Value(c, false) > deck.Value(cur, false)
			}
			return deck.Power(c, false) < deck.Power(cur, false)
		})
		thinking.AddThought(fmt.Sprintf("%s beats %s's %s", best, winner.Player, winner.Card))
		return best, true
	}

	plain := nonTrumps(state.Allowed, state.Trump)
	if len(plain) == 0 {
		return deck.Card{}, false
	}
	cheapest := lowestValue(plain, false)
	thinking.AddThought(fmt.Sprintf("Cannot beat %s's %s, dumping the %s", winner.Player, winner.Card, cheapest))
	return cheapest, true
}

// trumpValuableTrick spends the cheapest trump on a trick worth taking
func trumpValuableTrick(state game.TurnState, thinking *ThinkingContext) (deck.Card, bool) {
	if state.IsFirst() || state.TeammateWinning() {
		return deck.Card{}, false
	}
	value := state.Trick.Score()
	if value < valuableTrick {
		return deck.Card{}, false
	}
	trumps := deck.FilterSuit(state.Allowed, state.Trump)
	if len(trumps) == 0 {
		return deck.Card{}, false
	}
	c := lowestValue(trumps, true)
	thinking.AddThought(fmt.Sprintf("Trick is worth %d, trumping with the %s", value, c))
	return c, true
}

// cashVoidSuit leads the strongest card of a suit no opponent can follow
func cashVoidSuit(state game.TurnState, thinking *ThinkingContext) (deck.Card, bool) {
	if !state.IsFirst() {
		return deck.Card{}, false
	}
	for _, suit := range deck.Suits() {
		if suit == state.Trump {
			continue
		}
		cards := deck.FilterSuit(state.Allowed, suit)
		if len(cards) == 0 {
			continue
		}
		if opponentMightHold(state, suit) {
			continue
		}
		c := strongest(cards, false)
		thinking.AddThought(fmt.Sprintf("Opponents are out of %s, leading the %s", suit.Name(), c))
		return c, true
	}
	return deck.Card{}, false
}

// pullTrumps leads the strongest trump while opponents may still hold trump.
// Only the trump decider does this, even when the teammate named trump.
func pullTrumps(state game.TurnState, thinking *ThinkingContext) (deck.Card, bool) {
	if !state.IsFirst() || state.TrumpDecider != state.Player {
		return deck.Card{}, false
	}
	trumps := deck.FilterSuit(state.Allowed, state.Trump)
	if len(trumps) == 0 {
		return deck.Card{}, false
	}
	if OutstandingTrumps(state) == 0 || !opponentMightHold(state, state.Trump) {
		return deck.Card{}, false
	}
	c := strongest(trumps, true)
	thinking.AddThought(fmt.Sprintf("I decided %s, pulling trumps with the %s", state.Trump.Name(), c))
	return c, true
}

func opponentMightHold(state game.TurnState, suit deck.Suit) bool {
	for _, opp := range state.Opponents {
		if PlayerMightStillHaveSuit(opp, suit, state.Trump, state.PlayedTricks) {
			return true
		}
	}
	return false
}

func nonTrumps(cards []deck.Card, trump deck.Suit) []deck.Card {
	var out []deck.Card
	for _, c := range cards {
		if c.Suit != trump {
			out = append(out, c)
		}
	}
	return out
}

// pick returns the card preferred by better, keeping the earliest on ties
func pick(cards []deck.Card, better func(c, cur deck.Card) bool) deck.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

// lowestValue returns the cheapest card, breaking ties by lowest power
func lowestValue(cards []deck.Card, isTrump bool) deck.Card {
	return pick(cards, func(c, cur deck.Card) bool {
		if deck.Value(c, isTrump) != deck.Value(cur, isTrump) {
			return deck.Value(c, isTrump) < deck.Value(cur, isTrump)
		}
		return deck.Power(c, isTrump) < deck.Power(cur, isTrump)
	})
}

func strongest(cards []deck.Card, isTrump bool) deck.Card {
	return pick(cards, func(c, cur deck.Card) bool {
		return deck.Power(c, isTrump) > deck.Power(cur, isTrump)
	})
}
