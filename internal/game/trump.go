package game

import "github.com/teemoo7/jass-game/internal/deck"

// trumpGate is a minimum suit length paired with a card the suit must contain
// for it to be worth calling as trump.
type trumpGate struct {
	length int
	rank   deck.Rank
}

var trumpGates = []trumpGate{
	{3, deck.Jack},
	{4, deck.Nine},
	{5, deck.Ace},
}

// ComputeBestTrumpSuit picks a trump suit for a hand. Each suit scores the sum
// of its cards' trump power; ties keep suit order. When no suit passes the
// strength gates and passing is allowed, it returns false to signal a pass.
func ComputeBestTrumpSuit(hand []deck.Card, canPass bool) (deck.Suit, bool) {
	best, bestScore := deck.Hearts, -1
	gatedBest, gatedScore := deck.Hearts, -1

	for _, suit := range deck.Suits() {
		cards := deck.FilterSuit(hand, suit)
		score := 0
		for _, c := range cards {
			score += deck.Power(c, true)
		}
		if score > bestScore {
			best, bestScore = suit, score
		}
		if qualifiesAsTrump(cards) && score > gatedScore {
			gatedBest, gatedScore = suit, score
		}
	}

	if gatedScore >= 0 {
		return gatedBest, true
	}
	if canPass {
		return 0, false
	}
	return best, true
}

func qualifiesAsTrump(cards []deck.Card) bool {
	for _, g := range trumpGates {
		if len(cards) < g.length {
			continue
		}
		for _, c := range cards {
			if c.Rank == g.rank {
				return true
			}
		}
	}
	return false
}
