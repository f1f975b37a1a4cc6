package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
)

// Engine drives a game from the first deal until a team reaches the target
// score. It is shared between interactive play and simulation.
type Engine struct {
	game     *Game
	agents   map[*Player]Agent
	rng      *rand.Rand
	logger   *log.Logger
	eventBus EventBus
}

// NewEngine creates an engine. Every seated player needs an agent.
func NewEngine(g *Game, agents map[*Player]Agent, rng *rand.Rand, logger *log.Logger) (*Engine, error) {
	for _, p := range g.Players() {
		if agents[p] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingAgent, p)
		}
	}
	return &Engine{
		game:     g,
		agents:   agents,
		rng:      rng,
		logger:   logger,
		eventBus: NewEventBus(),
	}, nil
}

// EventBus returns the bus for subscribing to game events
func (e *Engine) EventBus() EventBus {
	return e.eventBus
}

// Game returns the game being played
func (e *Engine) Game() *Game {
	return e.game
}

// Run plays rounds until the game is over and returns the winning team. The
// first decider is located by the mode's locator card; afterwards the role
// moves to the next seat.
func (e *Engine) Run() (*Team, error) {
	var decider *Player
	for !e.game.IsOver() {
		round, err := NewRound(len(e.game.Rounds())+1, e.game.Teams, e.game.Mode, decider, e.rng)
		if err != nil {
			return nil, fmt.Errorf("failed to deal round %d: %w", len(e.game.Rounds())+1, err)
		}
		e.game.AddRound(round)

		if err := e.PlayRound(round); err != nil {
			return nil, fmt.Errorf("round %d: %w", round.Number, err)
		}

		decider, err = e.game.NextPlayer(round.TrumpDecider)
		if err != nil {
			return nil, err
		}
	}

	winner, _ := e.game.Winner()
	e.logger.Info("Game over",
		"winner", winner.Name,
		"score", e.game.Score(winner),
		"rounds", len(e.game.Rounds()))

	e.eventBus.Publish(GameEndEvent{
		GameID:    e.game.ID,
		Winner:    winner,
		Totals:    e.totals(),
		Rounds:    len(e.game.Rounds()),
		timestamp: time.Now(),
	})
	return winner, nil
}

// PlayRound decides trump, plays all nine tricks and folds the round into the
// game scores
func (e *Engine) PlayRound(round *Round) error {
	e.logger.Debug("Starting round", "round", round.Number, "decider", round.TrumpDecider.Name)
	e.eventBus.Publish(RoundStartEvent{Round: round, Decider: round.TrumpDecider, timestamp: time.Now()})

	if err := e.decideTrump(round); err != nil {
		return err
	}

	for !round.IsComplete() {
		player, _ := round.NextToPlay()
		if err := e.playCard(round, player); err != nil {
			return err
		}

		if round.CurrentTrick().IsComplete() {
			result, err := round.FinishTrick()
			if err != nil {
				return err
			}
			e.logger.Debug("Trick complete",
				"trick", result.Number,
				"winner", result.Winner.Player.Name,
				"card", result.Winner.Card,
				"points", result.Points)
			e.eventBus.Publish(TrickCompleteEvent{Round: round, Result: result, timestamp: time.Now()})
		}
	}

	scores := make(map[*Team]int, 2)
	for _, t := range e.game.Teams {
		scores[t] = round.Score(t)
	}
	e.game.AddRoundScores(round)

	e.logger.Info("Round complete",
		"round", round.Number,
		e.game.Teams[0].Name, scores[e.game.Teams[0]],
		e.game.Teams[1].Name, scores[e.game.Teams[1]],
		"multiplier", round.Multiplier())

	e.eventBus.Publish(RoundEndEvent{
		Round:      round,
		Scores:     scores,
		Multiplier: round.Multiplier(),
		Totals:     e.totals(),
		timestamp:  time.Now(),
	})
	return nil
}

// decideTrump asks the decider and, after a pass, the teammate who may not
// pass again
func (e *Engine) decideTrump(round *Round) error {
	decider := round.TrumpDecider
	choice, err := e.requestTrump(round, decider, true)
	if err != nil {
		return err
	}

	chooser, passed := decider, choice.Pass
	if passed {
		chooser, err = round.Teammate(decider)
		if err != nil {
			return err
		}
		e.logger.Debug("Trump passed", "from", decider.Name, "to", chooser.Name)
		choice, err = e.requestTrump(round, chooser, false)
		if err != nil {
			return err
		}
		if choice.Pass {
			suit, _ := ComputeBestTrumpSuit(round.Hand(chooser), false)
			e.logger.Error("Agent passed trump without the option to pass", "player", chooser.Name, "fallback", suit)
			choice = TrumpChoice{Suit: suit, Reasoning: "fallback due to invalid pass"}
		}
	}

	if err := round.DecideTrump(choice.Suit, chooser); err != nil {
		return err
	}
	e.logger.Debug("Trump decided", "trump", choice.Suit.Name(), "chooser", chooser.Name, "reasoning", choice.Reasoning)
	e.eventBus.Publish(TrumpDecidedEvent{
		Round:     round,
		Trump:     choice.Suit,
		Decider:   decider,
		Chooser:   chooser,
		Passed:    passed,
		Reasoning: choice.Reasoning,
		timestamp: time.Now(),
	})
	return nil
}

func (e *Engine) requestTrump(round *Round, p *Player, canPass bool) (TrumpChoice, error) {
	state, err := round.TrumpStateFor(p, canPass)
	if err != nil {
		return TrumpChoice{}, err
	}
	choice, err := e.agents[p].ChooseTrump(state)
	if err != nil {
		return TrumpChoice{}, fmt.Errorf("trump decision for %s: %w", p, err)
	}
	return choice, nil
}

// playCard requests a card and applies it. An illegal decision is logged and
// replaced by the first allowed card so the game never stalls.
func (e *Engine) playCard(round *Round, p *Player) error {
	state, err := round.TurnStateFor(p)
	if err != nil {
		return err
	}
	decision, err := e.agents[p].ChooseCard(state)
	if err != nil {
		return fmt.Errorf("card decision for %s: %w", p, err)
	}

	if err := round.Play(p, decision.Card); err != nil {
		e.logger.Error("Failed to apply agent decision", "error", err, "player", p.Name)
		decision = Decision{Card: state.Allowed[0], Reasoning: "fallback due to invalid decision"}
		if err := round.Play(p, decision.Card); err != nil {
			return fmt.Errorf("fallback play for %s: %w", p, err)
		}
	}

	e.logger.Debug("Card played",
		"player", p.Name,
		"card", decision.Card,
		"trick", round.TrickNumber(),
		"reasoning", decision.Reasoning)

	trick := round.CurrentTrick()
	e.eventBus.Publish(CardPlayedEvent{
		Round:     round,
		Player:    p,
		Card:      decision.Card,
		Trick:     trick,
		Reasoning: decision.Reasoning,
		timestamp: time.Now(),
	})

	if round.TrickNumber() == 1 && trick.IsComplete() {
		if melds := round.DefinitiveMelds(); len(melds) > 0 {
			e.publishMelds(round, melds)
		}
	}
	return nil
}

func (e *Engine) publishMelds(round *Round, melds []PlayerMeld) {
	team := round.TeamOf(melds[0].Player)
	points := 0
	for _, m := range melds {
		points += m.Meld.Points
	}
	e.logger.Debug("Melds resolved", "team", team.Name, "points", points, "melds", len(melds))
	e.eventBus.Publish(MeldsResolvedEvent{
		Round:     round,
		Team:      team,
		Melds:     melds,
		Points:    points,
		timestamp: time.Now(),
	})
}

func (e *Engine) totals() map[*Team]int {
	totals := make(map[*Team]int, 2)
	for _, t := range e.game.Teams {
		totals[t] = e.game.Score(t)
	}
	return totals
}
