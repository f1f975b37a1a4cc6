package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teemoo7/jass-game/internal/deck"
)

func TestComputeBestTrumpSuit(t *testing.T) {
	tests := []struct {
		name    string
		hand    string
		canPass bool
		want    deck.Suit
		pass    bool
	}{
		{"three with jack", "HJ H6 H7 C6 D6 S6 C7 D7 S7", true, deck.Hearts, false},
		{"four with nine", "S9 S6 S7 S8 H6 C6 D6 H7 C7", true, deck.Spades, false},
		{"five with ace", "DA D6 D7 D8 D10 H6 C6 S6 H7", true, deck.Diamonds, false},
		{"strongest qualifying suit", "HJ H6 H7 CJ C9 CA D6 S6 S7", true, deck.Clubs, false},
		{"weak hand passes", "H6 H7 H8 C6 C7 D6 D7 S6 S7", true, 0, true},
		{"weak hand without pass takes best score", "H6 H7 H8 C6 C7 D6 D7 S6 S7", false, deck.Hearts, false},
		{"ties keep suit order", "C6 C7 H6 H7", false, deck.Hearts, false},
		{"four without nine does not qualify", "CA CK CQ C10 H6 D6 S6 H7 D7", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suit, ok := ComputeBestTrumpSuit(deck.MustParseCards(tt.hand), tt.canPass)
			if tt.pass {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tt.want, suit)
		})
	}
}

func TestComputeBestTrumpSuitNeverPassesWhenForced(t *testing.T) {
	for _, hand := range []string{"H6", "C6 S7", "D8 D7 H6"} {
		_, ok := ComputeBestTrumpSuit(deck.MustParseCards(hand), false)
		assert.True(t, ok, hand)
	}
}
