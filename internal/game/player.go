package game

import (
	"fmt"
	"strings"
)

// Kind distinguishes who supplies a player's decisions
type Kind int

const (
	Human Kind = iota
	Bot
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Bot:
		return "bot"
	default:
		return "unknown"
	}
}

// Level is a bot skill tier. Each tier enables a superset of the rules of the
// tiers below it.
type Level int

const (
	LevelStupid Level = iota
	LevelEasy
	LevelMedium
	LevelHard
)

func (l Level) String() string {
	switch l {
	case LevelStupid:
		return "stupid"
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel parses a bot level name
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stupid", "random":
		return LevelStupid, nil
	case "easy":
		return LevelEasy, nil
	case "medium":
		return LevelMedium, nil
	case "hard":
		return LevelHard, nil
	}
	return 0, fmt.Errorf("unknown bot level %q", s)
}

// Player represents a seat at the table. Players are compared by identity.
type Player struct {
	Name  string
	Kind  Kind
	Level Level // Only meaningful for bots
}

// NewHuman creates a human player
func NewHuman(name string) *Player {
	return &Player{Name: name, Kind: Human}
}

// NewBot creates a bot player with the given skill level
func NewBot(name string, level Level) *Player {
	return &Player{Name: name, Kind: Bot, Level: level}
}

// IsHuman returns true if decisions come from external input
func (p *Player) IsHuman() bool {
	return p.Kind == Human
}

func (p *Player) String() string {
	return p.Name
}

// Team is a fixed pair of partners for the whole game
type Team struct {
	Name    string
	Player1 *Player
	Player2 *Player
}

// NewTeam creates a team
func NewTeam(name string, player1, player2 *Player) *Team {
	return &Team{Name: name, Player1: player1, Player2: player2}
}

// Players returns both team members
func (t *Team) Players() []*Player {
	return []*Player{t.Player1, t.Player2}
}

// Has reports whether p belongs to the team
func (t *Team) Has(p *Player) bool {
	return t.Player1 == p || t.Player2 == p
}

// Teammate returns p's partner
func (t *Team) Teammate(p *Player) (*Player, error) {
	switch p {
	case t.Player1:
		return t.Player2, nil
	case t.Player2:
		return t.Player1, nil
	}
	return nil, fmt.Errorf("%w: %s is not in team %s", ErrNotTeamMember, p, t.Name)
}

func (t *Team) String() string {
	return t.Name
}

// SeatingOrder returns the fixed alternating seating:
// team1.player1, team2.player1, team1.player2, team2.player2.
func SeatingOrder(teams [2]*Team) []*Player {
	return []*Player{teams[0].Player1, teams[1].Player1, teams[0].Player2, teams[1].Player2}
}

// nextInSeating returns the player seated after p, wrapping around
func nextInSeating(teams [2]*Team, p *Player) (*Player, error) {
	seats := SeatingOrder(teams)
	for i, s := range seats {
		if s == p {
			return seats[(i+1)%len(seats)], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, p)
}

// teamOf returns the team p belongs to, or nil
func teamOf(teams [2]*Team, p *Player) *Team {
	for _, t := range teams {
		if t.Has(p) {
			return t
		}
	}
	return nil
}

// validateTeams checks that the two teams hold four distinct players
func validateTeams(teams [2]*Team) error {
	seen := make(map[*Player]bool, 4)
	for _, t := range teams {
		if t == nil {
			return fmt.Errorf("%w: missing team", ErrInvalidTeams)
		}
		for _, p := range t.Players() {
			if p == nil {
				return fmt.Errorf("%w: team %s has an empty seat", ErrInvalidTeams, t.Name)
			}
			if seen[p] {
				return fmt.Errorf("%w: %s seated twice", ErrInvalidTeams, p)
			}
			seen[p] = true
		}
	}
	return nil
}
