package deck

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a Jass deck (4 suits x 9 ranks)
const DeckSize = 36

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new unshuffled 36-card deck. The rng drives Shuffle so that
// deals are reproducible for a given seed.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns n cards from the top of the deck
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
