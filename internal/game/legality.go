package game

import (
	"slices"

	"github.com/teemoo7/jass-game/internal/deck"
)

// LegalCards returns the cards from hand that may be played into trick.
//
// The leader may play anything. Otherwise a player follows the lead suit when
// able, or else may play any non-trump. On top of that a trump is always
// allowed when it would be the first trump of the trick or when it overtrumps
// the highest trump so far. If nothing qualifies the whole hand is allowed,
// so the result is never empty for a non-empty hand.
func LegalCards(hand []deck.Card, trick *Trick) []deck.Card {
	lead, ok := trick.LeadSuit()
	if !ok {
		return slices.Clone(hand)
	}
	trump := trick.Trump

	var allowed []deck.Card
	if followed := deck.FilterSuit(hand, lead); len(followed) > 0 {
		allowed = followed
	} else {
		for _, c := range hand {
			if c.Suit != trump {
				allowed = append(allowed, c)
			}
		}
	}

	highest, trumped := trick.HighestTrump()
	for _, c := range hand {
		if c.Suit != trump || slices.Contains(allowed, c) {
			continue
		}
		if !trumped || deck.Power(c, true) > deck.Power(highest, true) {
			allowed = append(allowed, c)
		}
	}

	if len(allowed) == 0 {
		return slices.Clone(hand)
	}
	return allowed
}
