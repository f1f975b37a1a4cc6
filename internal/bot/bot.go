package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/teemoo7/jass-game/internal/game"
	"github.com/teemoo7/jass-game/internal/randutil"
)

// ErrNoAllowedCards is returned when asked to play with an empty hand
var ErrNoAllowedCards = errors.New("no allowed cards to choose from")

// Bot plays cards through a cascade of heuristics. Higher levels enable more
// rules; every level falls back to a random allowed card. It satisfies
// game.Agent.
type Bot struct {
	level  game.Level
	rules  []rule
	rng    *rand.Rand
	logger *log.Logger
}

// NewBot creates a bot for the given skill level
func NewBot(level game.Level, rng *rand.Rand, logger *log.Logger) *Bot {
	return &Bot{
		level:  level,
		rules:  rulesFor(level),
		rng:    rng,
		logger: logger.WithPrefix("bot"),
	}
}

// Level returns the bot's skill level
func (b *Bot) Level() game.Level {
	return b.level
}

// ChooseTrump names the strongest suit, or passes when no suit is strong
// enough and passing is allowed
func (b *Bot) ChooseTrump(state game.TrumpState) (game.TrumpChoice, error) {
	suit, ok := game.ComputeBestTrumpSuit(state.Hand, state.CanPass)
	if !ok {
		b.logger.Debug("Bot passes trump", "player", state.Player.Name, "teammate", state.Teammate.Name)
		return game.TrumpChoice{Pass: true, Reasoning: "No suit strong enough, passing to teammate"}, nil
	}

	reasoning := fmt.Sprintf("%s is the strongest suit", suit.Name())
	if !state.CanPass {
		reasoning += " (passed to me)"
	}
	b.logger.Debug("Bot chose trump", "player", state.Player.Name, "trump", suit.Name())
	return game.TrumpChoice{Suit: suit, Reasoning: reasoning}, nil
}

// ChooseCard runs the rule cascade and returns the first card a rule picks
func (b *Bot) ChooseCard(state game.TurnState) (game.Decision, error) {
	if len(state.Allowed) == 0 {
		return game.Decision{}, ErrNoAllowedCards
	}

	thinking := &ThinkingContext{}
	for _, r := range b.rules {
		card, ok := r.apply(state, thinking)
		if !ok {
			continue
		}
		decision := game.Decision{Card: card, Reasoning: thinking.GetThoughts()}
		b.logger.Debug("Bot decision made",
			"player", state.Player.Name,
			"level", b.level,
			"rule", r.name,
			"card", card,
			"reasoning", decision.Reasoning)
		return decision, nil
	}

	card := randutil.Pick(b.rng, state.Allowed)
	thinking.AddThought(fmt.Sprintf("Nothing better to do, playing %s at random", card))
	b.logger.Debug("Bot decision made",
		"player", state.Player.Name,
		"level", b.level,
		"rule", "random",
		"card", card)
	return game.Decision{Card: card, Reasoning: thinking.GetThoughts()}, nil
}

// ThinkingContext accumulates the bot's thoughts during a decision
type ThinkingContext struct {
	thoughts []string
}

// AddThought adds a thought to the thinking process
func (tc *ThinkingContext) AddThought(thought string) {
	tc.thoughts = append(tc.thoughts, thought)
}

// GetThoughts returns the complete stream of thoughts
func (tc *ThinkingContext) GetThoughts() string {
	if len(tc.thoughts) == 0 {
		return "No clear reasoning available"
	}
	return strings.Join(tc.thoughts, ". ")
}

// NewAgents creates a bot agent for every bot seated in the game. Each bot
// draws from its own stream derived from seed.
func NewAgents(g *game.Game, seed int64, logger *log.Logger) map[*game.Player]game.Agent {
	agents := make(map[*game.Player]game.Agent, 4)
	for i, p := range g.Players() {
		if p.Kind != game.Bot {
			continue
		}
		agents[p] = NewBot(p.Level, randutil.New(randutil.Derive(seed, i+1)), logger.With("player", p.Name))
	}
	return agents
}

var _ game.Agent = (*Bot)(nil)
