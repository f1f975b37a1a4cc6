package bot

import (
	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/game"
)

// PlayerMightStillHaveSuit infers from completed tricks whether target could
// still hold cards of suit. A player who did not lead and answered a lead of
// suit with neither suit nor trump must be void in it.
func PlayerMightStillHaveSuit(target *game.Player, suit, trump deck.Suit, tricks []*game.Trick) bool {
	for _, t := range tricks {
		lead, ok := t.LeadSuit()
		if !ok || lead != suit || t.Plays[0].Player == target {
			continue
		}
		c, played := t.PlayedBy(target)
		if !played {
			continue
		}
		if c.Suit != suit && c.Suit != trump {
			return false
		}
	}
	return true
}

// OutstandingTrumps counts trumps that are neither played nor in the
// player's own hand
func OutstandingTrumps(state game.TurnState) int {
	seen := len(deck.FilterSuit(state.Hand, state.Trump))
	tricks := append(state.PlayedTricks[:len(state.PlayedTricks):len(state.PlayedTricks)], state.Trick)
	for _, t := range tricks {
		for _, p := range t.Plays {
			if p.Card.Suit == state.Trump {
				seen++
			}
		}
	}
	return len(deck.Ranks()) - seen
}
