package game

import (
	"fmt"
	"strings"

	"github.com/teemoo7/jass-game/internal/deck"
)

// Mode selects the target score and the card that locates the first trump
// decider
type Mode int

const (
	ModeNormal Mode = iota
	ModeDoubledSpades
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDoubledSpades:
		return "doubled-spades"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ModeNormal, nil
	case "doubled-spades", "doubled_spades", "spades":
		return ModeDoubledSpades, nil
	}
	return 0, fmt.Errorf("unknown game mode %q", s)
}

// TargetScore is the cumulative score that ends the game
func (m Mode) TargetScore() int {
	if m == ModeDoubledSpades {
		return 1500
	}
	return 1000
}

// LocatorCard is the card whose holder decides trump in the first round
func (m Mode) LocatorCard() deck.Card {
	if m == ModeDoubledSpades {
		return deck.NewCard(deck.Spades, deck.Queen)
	}
	return deck.NewCard(deck.Diamonds, deck.Seven)
}

// Game holds two teams and their cumulative scores across rounds
type Game struct {
	ID     string
	Teams  [2]*Team
	Mode   Mode
	rounds []*Round
	scores map[*Team]int
}

// NewGame creates a game between two teams of distinct players
func NewGame(id string, teams [2]*Team, mode Mode) (*Game, error) {
	if err := validateTeams(teams); err != nil {
		return nil, err
	}
	return &Game{
		ID:     id,
		Teams:  teams,
		Mode:   mode,
		scores: map[*Team]int{teams[0]: 0, teams[1]: 0},
	}, nil
}

// TargetScore returns the score that ends this game
func (g *Game) TargetScore() int {
	return g.Mode.TargetScore()
}

// Players returns all four players in seating order
func (g *Game) Players() []*Player {
	return SeatingOrder(g.Teams)
}

// AddRound records a round as part of this game
func (g *Game) AddRound(r *Round) {
	g.rounds = append(g.rounds, r)
}

// Rounds returns the rounds played so far
func (g *Game) Rounds() []*Round {
	return g.rounds
}

// CurrentRound returns the most recent round, if any
func (g *Game) CurrentRound() *Round {
	if len(g.rounds) == 0 {
		return nil
	}
	return g.rounds[len(g.rounds)-1]
}

// AddRoundScores folds a round's per-team points into the cumulative scores
func (g *Game) AddRoundScores(r *Round) {
	for _, t := range g.Teams {
		g.scores[t] += r.Score(t) * r.Multiplier()
	}
}

// Score returns a team's cumulative score
func (g *Game) Score(t *Team) int {
	return g.scores[t]
}

// IsOver returns true once any team reaches the target score
func (g *Game) IsOver() bool {
	_, ok := g.Winner()
	return ok
}

// Winner returns the team that reached the target score. When both teams do
// in the same round, the first team in team order wins.
func (g *Game) Winner() (*Team, bool) {
	for _, t := range g.Teams {
		if g.scores[t] >= g.TargetScore() {
			return t, true
		}
	}
	return nil, false
}

// NextPlayer returns the player seated after p
func (g *Game) NextPlayer(p *Player) (*Player, error) {
	return nextInSeating(g.Teams, p)
}

// PlayerTeam returns the team p plays for
func (g *Game) PlayerTeam(p *Player) (*Team, error) {
	if t := teamOf(g.Teams, p); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, p)
}
