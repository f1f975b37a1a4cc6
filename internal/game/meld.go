package game

import (
	"fmt"
	"slices"

	"github.com/teemoo7/jass-game/internal/deck"
)

// MeldType identifies a bonus-scoring hand pattern
type MeldType int

const (
	ThreeInARow MeldType = iota
	FourInARow
	FiveInARow
	FourOfAKind
	FourNines
	FourJacks
)

func (t MeldType) String() string {
	switch t {
	case ThreeInARow:
		return "3 in a row"
	case FourInARow:
		return "4 in a row"
	case FiveInARow:
		return "5 in a row"
	case FourOfAKind:
		return "Four of a kind"
	case FourNines:
		return "Four nines"
	case FourJacks:
		return "Four jacks"
	default:
		return "Unknown meld"
	}
}

// runMelds is indexed by run length
var runMelds = [...]struct {
	points int
	typ    MeldType
}{
	3: {20, ThreeInARow},
	4: {50, FourInARow},
	5: {100, FiveInARow},
}

// maxRunLength is the longest run that scores; longer runs keep their top five
const maxRunLength = 5

// Meld is a value object computed fresh each round
type Meld struct {
	Points      int
	HighestRank deck.Rank
	Suit        deck.Suit // Only set when Suited
	Suited      bool
	Type        MeldType
}

func (m Meld) String() string {
	if m.Suited {
		return fmt.Sprintf("%s to %s%s (%d)", m.Type, m.HighestRank, m.Suit, m.Points)
	}
	return fmt.Sprintf("%s of %s (%d)", m.Type, m.HighestRank, m.Points)
}

// Beats reports whether m outranks other: more points, then the higher plain
// power of the highest rank.
func (m Meld) Beats(other Meld) bool {
	if m.Points != other.Points {
		return m.Points > other.Points
	}
	return deck.RankPower(m.HighestRank, false) > deck.RankPower(other.HighestRank, false)
}

// PlayerMeld pairs a meld with the player who declared it
type PlayerMeld struct {
	Player *Player
	Meld   Meld
}

// ComputeMeld returns the single highest meld in a hand, if any
func ComputeMeld(hand []deck.Card) (Meld, bool) {
	var best Meld
	found := false
	keep := func(m Meld) {
		if !found || m.Beats(best) {
			best, found = m, true
		}
	}

	for _, suit := range deck.Suits() {
		if m, ok := ComputeSuitMeld(deck.FilterSuit(hand, suit), suit); ok {
			keep(m)
		}
	}

	for _, rank := range deck.Ranks() {
		count := 0
		for _, c := range hand {
			if c.Rank == rank {
				count++
			}
		}
		if count != len(deck.Suits()) {
			continue
		}
		if m, ok := fourOfAKind(rank); ok {
			keep(m)
		}
	}

	return best, found
}

func fourOfAKind(rank deck.Rank) (Meld, bool) {
	switch rank {
	case deck.Nine:
		return Meld{Points: 150, HighestRank: rank, Type: FourNines}, true
	case deck.Jack:
		return Meld{Points: 200, HighestRank: rank, Type: FourJacks}, true
	case deck.Ten, deck.Queen, deck.King, deck.Ace:
		return Meld{Points: 100, HighestRank: rank, Type: FourOfAKind}, true
	}
	return Meld{}, false
}

// ComputeSuitMeld returns the best run meld among cards of a single suit.
// Runs follow the fixed rank order and never wrap past the Ace.
func ComputeSuitMeld(cards []deck.Card, suit deck.Suit) (Meld, bool) {
	if len(cards) < 3 {
		return Meld{}, false
	}

	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b deck.Card) int {
		return deck.Power(a, false) - deck.Power(b, false)
	})

	var best Meld
	found := false
	flush := func(length int, top deck.Rank) {
		if length < 3 {
			return
		}
		kind := runMelds[min(length, maxRunLength)]
		m := Meld{Points: kind.points, HighestRank: top, Suit: suit, Suited: true, Type: kind.typ}
		if !found || m.Beats(best) {
			best, found = m, true
		}
	}

	length := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank == sorted[i-1].Rank+1 {
			length++
			continue
		}
		flush(length, sorted[i-1].Rank)
		length = 1
	}
	flush(length, sorted[len(sorted)-1].Rank)

	return best, found
}

// bestMeld returns the index of the winning meld; earlier entries win exact ties
func bestMeld(melds []PlayerMeld) int {
	best := 0
	for i := 1; i < len(melds); i++ {
		if melds[i].Meld.Beats(melds[best].Meld) {
			best = i
		}
	}
	return best
}
