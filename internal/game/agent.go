package game

import (
	"slices"

	"github.com/teemoo7/jass-game/internal/deck"
)

// Decision is a card choice with reasoning
type Decision struct {
	Card      deck.Card
	Reasoning string // Human-readable explanation
}

// TrumpChoice is a trump decision. Pass is only honoured when the state
// allowed passing.
type TrumpChoice struct {
	Suit      deck.Suit
	Pass      bool
	Reasoning string
}

// TrumpState is the read-only view offered to whoever decides trump
type TrumpState struct {
	Player      *Player
	Teammate    *Player
	Hand        []deck.Card
	CanPass     bool
	RoundNumber int
	Mode        Mode
}

// TurnState is the read-only view offered to the player about to play
type TurnState struct {
	Player       *Player
	Teammate     *Player
	Opponents    [2]*Player
	Hand         []deck.Card
	Allowed      []deck.Card
	Trump        deck.Suit
	TrumpDecider *Player
	TrumpChooser *Player
	Trick        *Trick   // Trick in progress, never nil
	PlayedTricks []*Trick // Completed tricks this round
	TrickNumber  int
	RoundNumber  int
}

// Position returns how many cards were played before this player in the trick
func (s TurnState) Position() int {
	return s.Trick.Len()
}

// IsFirst returns true if the player leads the trick
func (s TurnState) IsFirst() bool {
	return s.Trick.IsEmpty()
}

// IsLast returns true if the player closes the trick
func (s TurnState) IsLast() bool {
	return s.Trick.Len() == 3
}

// TeammateWinning returns true if the teammate currently holds the trick
func (s TurnState) TeammateWinning() bool {
	w, ok := s.Trick.Winner()
	return ok && w.Player == s.Teammate
}

// IsOpponent reports whether p plays for the other team
func (s TurnState) IsOpponent(p *Player) bool {
	return slices.Contains(s.Opponents[:], p)
}

// Agent supplies decisions for a player, whether human or bot. Agents see
// immutable snapshots and never mutate the round. An error aborts the game.
type Agent interface {
	ChooseTrump(state TrumpState) (TrumpChoice, error)
	ChooseCard(state TurnState) (Decision, error)
}

// TrumpStateFor builds the trump decision view for p
func (r *Round) TrumpStateFor(p *Player, canPass bool) (TrumpState, error) {
	mate, err := r.Teammate(p)
	if err != nil {
		return TrumpState{}, err
	}
	return TrumpState{
		Player:      p,
		Teammate:    mate,
		Hand:        r.Hand(p),
		CanPass:     canPass,
		RoundNumber: r.Number,
		Mode:        r.Mode,
	}, nil
}

// TurnStateFor builds the card decision view for p
func (r *Round) TurnStateFor(p *Player) (TurnState, error) {
	allowed, err := r.AllowedCards(p)
	if err != nil {
		return TurnState{}, err
	}
	mate, err := r.Teammate(p)
	if err != nil {
		return TurnState{}, err
	}
	var opponents [2]*Player
	for _, t := range r.Teams {
		if !t.Has(p) {
			opponents = [2]*Player{t.Player1, t.Player2}
		}
	}
	return TurnState{
		Player:       p,
		Teammate:     mate,
		Opponents:    opponents,
		Hand:         r.Hand(p),
		Allowed:      allowed,
		Trump:        r.trump,
		TrumpDecider: r.TrumpDecider,
		TrumpChooser: r.trumpChooser,
		Trick:        r.CurrentTrick(),
		PlayedTricks: r.PlayedTricks(),
		TrickNumber:  r.TrickNumber(),
		RoundNumber:  r.Number,
	}, nil
}
