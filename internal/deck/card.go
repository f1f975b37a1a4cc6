package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

// Suits are declared in the order used for every deterministic scan
// (trump candidates, hand sorting, meld detection).
const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// Suits returns all suits in enumeration order
func Suits() []Suit {
	return []Suit{Hearts, Clubs, Diamonds, Spades}
}

// String returns the symbol of a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the English name of a suit
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Letter returns the one letter abbreviation of a suit (H, C, D, S)
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit parses a suit from its letter or name
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HEARTS":
		return Hearts, nil
	case "C", "CLUBS":
		return Clubs, nil
	case "D", "DIAMONDS":
		return Diamonds, nil
	case "S", "SPADES":
		return Spades, nil
	}
	return 0, fmt.Errorf("invalid suit %q", s)
}

// Rank represents a card rank
type Rank int

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks returns all ranks from lowest to highest
func Ranks() []Rank {
	return []Rank{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseRank parses a rank from its abbreviation
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("invalid rank %q", s)
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ParseCard parses a card written as suit letter followed by rank, e.g. "H10" or "SQ"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	suit, err := ParseSuit(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	rank, err := ParseRank(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return NewCard(suit, rank), nil
}

// MustParseCards parses a space separated list of cards and panics on error.
// Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// String returns the string representation of a card (e.g., "10♥")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code returns the parseable form of a card (e.g., "H10")
func (c Card) Code() string {
	return c.Suit.Letter() + c.Rank.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}
