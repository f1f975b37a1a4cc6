package deck

import (
	"slices"
	"strings"
)

// Hand is the set of cards a player holds during a round. Cards never repeat
// within a deck, so removal is by value.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding a copy of the given cards
func NewHand(cards []Card) *Hand {
	return &Hand{cards: slices.Clone(cards)}
}

// Add appends a card to the hand
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Remove removes a card from the hand, reporting whether it was held
func (h *Hand) Remove(c Card) bool {
	i := slices.Index(h.cards, c)
	if i < 0 {
		return false
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return true
}

// Contains reports whether the hand holds the card
func (h *Hand) Contains(c Card) bool {
	return slices.Contains(h.cards, c)
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the held cards in hand order
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// OfSuit returns the held cards of the given suit in hand order
func (h *Hand) OfSuit(s Suit) []Card {
	return FilterSuit(h.cards, s)
}

// HasSuit reports whether the hand holds any card of the given suit
func (h *Hand) HasSuit(s Suit) bool {
	return slices.ContainsFunc(h.cards, func(c Card) bool { return c.Suit == s })
}

// SortBySuitAndPower groups the hand by suit order, then orders each group by
// plain power. Purely cosmetic.
func (h *Hand) SortBySuitAndPower() {
	SortBySuitAndPower(h.cards)
}

// String returns the hand as space separated cards
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FilterSuit returns the cards of the given suit
func FilterSuit(cards []Card, s Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// SortBySuitAndPower sorts cards in place by suit order then plain power
func SortBySuitAndPower(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		if a.Suit != b.Suit {
			return int(a.Suit) - int(b.Suit)
		}
		return RankPower(a.Rank, false) - RankPower(b.Rank, false)
	})
}
