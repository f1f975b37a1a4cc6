package deck

import (
	"testing"

	"github.com/teemoo7/jass-game/internal/randutil"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{name: "ten of hearts", input: "H10", expected: Card{Suit: Hearts, Rank: Ten}},
		{name: "ten with T", input: "HT", expected: Card{Suit: Hearts, Rank: Ten}},
		{name: "queen of spades", input: "SQ", expected: Card{Suit: Spades, Rank: Queen}},
		{name: "lowercase", input: "d7", expected: Card{Suit: Diamonds, Rank: Seven}},
		{name: "six of clubs", input: "C6", expected: Card{Suit: Clubs, Rank: Six}},
		{name: "invalid suit", input: "X6", wantErr: true},
		{name: "invalid rank", input: "H2", wantErr: true},
		{name: "too short", input: "H", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if back, _ := ParseCard(got.Code()); back != got {
				t.Errorf("Code() of %v does not parse back", got)
			}
		})
	}
}

func TestRankOrder(t *testing.T) {
	ranks := Ranks()
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] >= ranks[i] {
			t.Errorf("rank %s should be below %s", ranks[i-1], ranks[i])
		}
	}
}

func TestValueTables(t *testing.T) {
	tests := []struct {
		card       string
		plainValue int
		trumpValue int
		plainPower int
		trumpPower int
	}{
		{"HA", 11, 11, 8, 16},
		{"HK", 4, 4, 7, 15},
		{"HQ", 3, 3, 6, 14},
		{"HJ", 2, 20, 5, 18},
		{"H10", 10, 10, 4, 13},
		{"H9", 0, 14, 3, 17},
		{"H8", 0, 0, 2, 12},
		{"H7", 0, 0, 1, 11},
		{"H6", 0, 0, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			c, err := ParseCard(tt.card)
			if err != nil {
				t.Fatal(err)
			}
			if got := Value(c, false); got != tt.plainValue {
				t.Errorf("plain value = %d, want %d", got, tt.plainValue)
			}
			if got := Value(c, true); got != tt.trumpValue {
				t.Errorf("trump value = %d, want %d", got, tt.trumpValue)
			}
			if got := Power(c, false); got != tt.plainPower {
				t.Errorf("plain power = %d, want %d", got, tt.plainPower)
			}
			if got := Power(c, true); got != tt.trumpPower {
				t.Errorf("trump power = %d, want %d", got, tt.trumpPower)
			}
		})
	}
}

func TestTrumpAlwaysOutranksPlain(t *testing.T) {
	for _, low := range Ranks() {
		for _, high := range Ranks() {
			if RankPower(low, true) <= RankPower(high, false) {
				t.Errorf("trump %s (%d) should outrank plain %s (%d)",
					low, RankPower(low, true), high, RankPower(high, false))
			}
		}
	}
}

func TestTotalPoints(t *testing.T) {
	for _, s := range Suits() {
		if got := TotalPoints(s); got != 152 {
			t.Errorf("TotalPoints(%s) = %d, want 152", s.Name(), got)
		}
	}
}

func TestDeckDealsAllCardsOnce(t *testing.T) {
	d := NewDeck(randutil.New(7))
	d.Shuffle()

	seen := make(map[Card]bool)
	for range 4 {
		for _, c := range d.Deal(9) {
			if seen[c] {
				t.Fatalf("card %s dealt twice", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("dealt %d distinct cards, want %d", len(seen), DeckSize)
	}
	if !d.IsEmpty() {
		t.Errorf("deck should be empty, %d remaining", d.CardsRemaining())
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	a.Shuffle()
	b.Shuffle()

	ca, cb := a.Deal(DeckSize), b.Deal(DeckSize)
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("position %d differs: %s vs %s", i, ca[i], cb[i])
		}
	}
}
