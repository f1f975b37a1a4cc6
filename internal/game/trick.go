package game

import (
	"strings"

	"github.com/teemoo7/jass-game/internal/deck"
)

// PlayedCard is a card together with the player who played it
type PlayedCard struct {
	Card   deck.Card
	Player *Player
}

// Trick is an ordered collection of up to four plays. The first play
// determines the lead suit.
type Trick struct {
	Trump deck.Suit
	Plays []PlayedCard
}

// NewTrick creates an empty trick
func NewTrick(trump deck.Suit) *Trick {
	return &Trick{Trump: trump, Plays: make([]PlayedCard, 0, 4)}
}

// Add appends a play to the trick
func (t *Trick) Add(p *Player, c deck.Card) {
	t.Plays = append(t.Plays, PlayedCard{Card: c, Player: p})
}

// Len returns the number of cards played so far
func (t *Trick) Len() int {
	return len(t.Plays)
}

// IsEmpty returns true if nobody has played yet
func (t *Trick) IsEmpty() bool {
	return len(t.Plays) == 0
}

// IsComplete returns true once all four players have played
func (t *Trick) IsComplete() bool {
	return len(t.Plays) == 4
}

// LeadSuit returns the suit of the first card, if any
func (t *Trick) LeadSuit() (deck.Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// Cards returns the played cards in play order
func (t *Trick) Cards() []deck.Card {
	cards := make([]deck.Card, len(t.Plays))
	for i, p := range t.Plays {
		cards[i] = p.Card
	}
	return cards
}

// Score is the sum of card values under the trick's trump
func (t *Trick) Score() int {
	score := 0
	for _, p := range t.Plays {
		score += deck.Value(p.Card, p.Card.Suit == t.Trump)
	}
	return score
}

// Winner returns the currently winning play. Any trump beats any non-trump,
// and among non-trumps only the lead suit can win.
func (t *Trick) Winner() (PlayedCard, bool) {
	if len(t.Plays) == 0 {
		return PlayedCard{}, false
	}
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if t.beats(p.Card, best.Card) {
			best = p
		}
	}
	return best, true
}

func (t *Trick) beats(challenger, holder deck.Card) bool {
	challengerTrump := challenger.Suit == t.Trump
	holderTrump := holder.Suit == t.Trump
	switch {
	case challengerTrump && !holderTrump:
		return true
	case !challengerTrump && holderTrump:
		return false
	case challenger.Suit != holder.Suit:
		return false
	}
	return deck.Power(challenger, challengerTrump) > deck.Power(holder, holderTrump)
}

// PlayedBy returns the card a player contributed, if any
func (t *Trick) PlayedBy(p *Player) (deck.Card, bool) {
	for _, pc := range t.Plays {
		if pc.Player == p {
			return pc.Card, true
		}
	}
	return deck.Card{}, false
}

// HighestTrump returns the strongest trump played so far, if any
func (t *Trick) HighestTrump() (deck.Card, bool) {
	var best deck.Card
	found := false
	for _, p := range t.Plays {
		if p.Card.Suit != t.Trump {
			continue
		}
		if !found || deck.Power(p.Card, true) > deck.Power(best, true) {
			best, found = p.Card, true
		}
	}
	return best, found
}

// Clone returns an independent copy of the trick
func (t *Trick) Clone() *Trick {
	c := &Trick{Trump: t.Trump, Plays: make([]PlayedCard, len(t.Plays), 4)}
	copy(c.Plays, t.Plays)
	return c
}

func (t *Trick) String() string {
	parts := make([]string, len(t.Plays))
	for i, p := range t.Plays {
		parts[i] = p.Player.Name + ":" + p.Card.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
