package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/teemoo7/jass-game/internal/deck"
)

const (
	// CardsPerPlayer is dealt to each of the four players every round
	CardsPerPlayer = 9
	// TricksPerRound equals CardsPerPlayer since every play empties one slot
	TricksPerRound = 9
	// LastTrickBonus is added to the value of the ninth trick
	LastTrickBonus = 5
)

// Phase tracks where a round is in its lifecycle
type Phase int

const (
	PhaseDealt    Phase = iota // Cards dealt, trump undecided
	PhasePlaying               // Trump decided, tricks in progress
	PhaseComplete              // All nine tricks played
)

func (p Phase) String() string {
	switch p {
	case PhaseDealt:
		return "dealt"
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// TrickResult summarises a finished trick
type TrickResult struct {
	Number int
	Trick  *Trick
	Winner PlayedCard
	Team   *Team
	Points int // Includes the last trick bonus
}

// Round is one deal of 36 cards played out over nine tricks. It is not safe
// for concurrent use; the engine drives it from a single goroutine.
type Round struct {
	Number       int
	Teams        [2]*Team
	Mode         Mode
	TrumpDecider *Player

	phase        Phase
	trump        deck.Suit
	trumpChooser *Player

	hands  map[*Player]*deck.Hand
	scores map[*Team]int

	leader       *Player
	currentTrick *Trick
	playedTricks []*Trick

	provisionalMelds []PlayerMeld
	definitiveMelds  []PlayerMeld
}

// NewRound shuffles and deals a fresh deck. When decider is nil the holder of
// the mode's locator card decides trump.
func NewRound(number int, teams [2]*Team, mode Mode, decider *Player, rng *rand.Rand) (*Round, error) {
	if err := validateTeams(teams); err != nil {
		return nil, err
	}

	r := &Round{
		Number: number,
		Teams:  teams,
		Mode:   mode,
		hands:  make(map[*Player]*deck.Hand, 4),
		scores: map[*Team]int{teams[0]: 0, teams[1]: 0},
	}

	d := deck.NewDeck(rng)
	d.Shuffle()
	for _, t := range teams {
		for _, p := range t.Players() {
			hand := deck.NewHand(d.Deal(CardsPerPlayer))
			if p.IsHuman() {
				hand.SortBySuitAndPower()
			}
			r.hands[p] = hand
		}
	}

	if decider == nil {
		locator := mode.LocatorCard()
		for p, hand := range r.hands {
			if hand.Contains(locator) {
				decider = p
				break
			}
		}
		if decider == nil {
			return nil, fmt.Errorf("%w: %s", ErrLocatorCardNotFound, locator)
		}
	} else if teamOf(teams, decider) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, decider)
	}
	r.TrumpDecider = decider

	return r, nil
}

// Phase returns the current lifecycle phase
func (r *Round) Phase() Phase {
	return r.phase
}

// IsComplete returns true once all nine tricks are finished
func (r *Round) IsComplete() bool {
	return r.phase == PhaseComplete
}

// Trump returns the decided trump suit
func (r *Round) Trump() (deck.Suit, bool) {
	if r.phase == PhaseDealt {
		return 0, false
	}
	return r.trump, true
}

// TrumpChooser returns who actually named trump: the decider or, after a
// pass, the decider's teammate.
func (r *Round) TrumpChooser() *Player {
	return r.trumpChooser
}

// DecideTrump fixes the trump suit and opens the first trick, led by the
// trump decider.
func (r *Round) DecideTrump(suit deck.Suit, chooser *Player) error {
	if r.phase != PhaseDealt {
		return ErrTrumpAlreadyDecided
	}
	team := r.TeamOf(r.TrumpDecider)
	if chooser == nil {
		chooser = r.TrumpDecider
	}
	if !team.Has(chooser) {
		return fmt.Errorf("%w: %s cannot choose trump for %s", ErrNotTeamMember, chooser, team)
	}

	r.trump = suit
	r.trumpChooser = chooser
	r.phase = PhasePlaying
	r.leader = r.TrumpDecider
	r.currentTrick = NewTrick(suit)
	return nil
}

// Hand returns a copy of a player's remaining cards
func (r *Round) Hand(p *Player) []deck.Card {
	h, ok := r.hands[p]
	if !ok {
		return nil
	}
	return h.Cards()
}

// TeamOf returns the team p plays for, or nil
func (r *Round) TeamOf(p *Player) *Team {
	return teamOf(r.Teams, p)
}

// Teammate returns p's partner
func (r *Round) Teammate(p *Player) (*Player, error) {
	t := r.TeamOf(p)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, p)
	}
	return t.Teammate(p)
}

// TrickNumber returns the 1-based number of the trick in progress
func (r *Round) TrickNumber() int {
	return min(len(r.playedTricks)+1, TricksPerRound)
}

// CurrentTrick returns a copy of the trick in progress, or nil before trump is
// decided and after the round ends.
func (r *Round) CurrentTrick() *Trick {
	if r.currentTrick == nil {
		return nil
	}
	return r.currentTrick.Clone()
}

// PlayedTricks returns copies of all completed tricks in order
func (r *Round) PlayedTricks() []*Trick {
	tricks := make([]*Trick, len(r.playedTricks))
	for i, t := range r.playedTricks {
		tricks[i] = t.Clone()
	}
	return tricks
}

// PlayedTrumpCards returns every trump played so far this round
func (r *Round) PlayedTrumpCards() []deck.Card {
	if r.phase == PhaseDealt {
		return nil
	}
	var played []deck.Card
	tricks := r.playedTricks
	if r.currentTrick != nil {
		tricks = append(slices.Clip(tricks), r.currentTrick)
	}
	for _, t := range tricks {
		for _, p := range t.Plays {
			if p.Card.Suit == r.trump {
				played = append(played, p.Card)
			}
		}
	}
	return played
}

// ProvisionalMelds returns melds recorded during the first trick that have
// not been resolved yet
func (r *Round) ProvisionalMelds() []PlayerMeld {
	return slices.Clone(r.provisionalMelds)
}

// DefinitiveMelds returns the melds credited to the winning team
func (r *Round) DefinitiveMelds() []PlayerMeld {
	return slices.Clone(r.definitiveMelds)
}

// NextToPlay returns the player whose turn it is in the current trick
func (r *Round) NextToPlay() (*Player, bool) {
	if r.phase != PhasePlaying || r.currentTrick.IsComplete() {
		return nil, false
	}
	p := r.leader
	for range r.currentTrick.Len() {
		p, _ = nextInSeating(r.Teams, p)
	}
	return p, true
}

// AllowedCards returns the cards p may legally play into the current trick
func (r *Round) AllowedCards(p *Player) ([]deck.Card, error) {
	switch r.phase {
	case PhaseDealt:
		return nil, ErrTrumpUndecided
	case PhaseComplete:
		return nil, ErrRoundComplete
	}
	h, ok := r.hands[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, p)
	}
	return LegalCards(h.Cards(), r.currentTrick), nil
}

// Play puts a card from p's hand into the current trick. During the first
// trick each player's meld is taken from their hand before the card leaves
// it, and melds are resolved as soon as the fourth card lands.
func (r *Round) Play(p *Player, c deck.Card) error {
	allowed, err := r.AllowedCards(p)
	if err != nil {
		return err
	}
	if r.currentTrick.IsComplete() {
		return ErrTrickComplete
	}
	if next, _ := r.NextToPlay(); next != p {
		return fmt.Errorf("%w: %s played but %s is next", ErrNotYourTurn, p, next)
	}
	hand := r.hands[p]
	if !hand.Contains(c) {
		return fmt.Errorf("%w: %s does not hold %s", ErrCardNotInHand, p, c)
	}
	if !slices.Contains(allowed, c) {
		return fmt.Errorf("%w: %s", ErrIllegalCard, c)
	}

	firstTrick := len(r.playedTricks) == 0
	if firstTrick {
		if m, ok := ComputeMeld(hand.Cards()); ok {
			r.provisionalMelds = append(r.provisionalMelds, PlayerMeld{Player: p, Meld: m})
		}
	}

	hand.Remove(c)
	r.currentTrick.Add(p, c)

	if firstTrick && r.currentTrick.IsComplete() {
		r.resolveMelds()
	}
	return nil
}

// resolveMelds credits every meld of the team holding the single best meld.
// Earlier declarations win exact ties.
func (r *Round) resolveMelds() {
	if len(r.provisionalMelds) == 0 {
		return
	}
	best := r.provisionalMelds[bestMeld(r.provisionalMelds)]
	team := r.TeamOf(best.Player)
	for _, pm := range r.provisionalMelds {
		if team.Has(pm.Player) {
			r.definitiveMelds = append(r.definitiveMelds, pm)
			r.AddScore(team, pm.Meld.Points)
		}
	}
	r.provisionalMelds = nil
}

// FinishTrick scores the completed trick, credits the winning team and opens
// the next trick led by the winner.
func (r *Round) FinishTrick() (TrickResult, error) {
	if r.phase != PhasePlaying {
		if r.phase == PhaseDealt {
			return TrickResult{}, ErrTrumpUndecided
		}
		return TrickResult{}, ErrRoundComplete
	}
	if !r.currentTrick.IsComplete() {
		return TrickResult{}, ErrTrickIncomplete
	}

	trick := r.currentTrick
	winner, _ := trick.Winner()
	team := r.TeamOf(winner.Player)
	points := trick.Score()
	r.playedTricks = append(r.playedTricks, trick)
	number := len(r.playedTricks)
	if number == TricksPerRound {
		points += LastTrickBonus
	}
	r.AddScore(team, points)

	if number == TricksPerRound {
		r.phase = PhaseComplete
		r.currentTrick = nil
		r.leader = nil
	} else {
		r.leader = winner.Player
		r.currentTrick = NewTrick(r.trump)
	}

	return TrickResult{
		Number: number,
		Trick:  trick.Clone(),
		Winner: winner,
		Team:   team,
		Points: points,
	}, nil
}

// AddScore accumulates points for a team in this round
func (r *Round) AddScore(t *Team, delta int) {
	r.scores[t] += delta
}

// Score returns the raw points a team made this round
func (r *Round) Score(t *Team) int {
	return r.scores[t]
}

// Multiplier is applied when folding this round into the game score. Spades
// count double in the doubled spades mode, meld bonuses included.
func (r *Round) Multiplier() int {
	if r.Mode == ModeDoubledSpades && r.phase != PhaseDealt && r.trump == deck.Spades {
		return 2
	}
	return 1
}
