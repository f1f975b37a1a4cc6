package tui

import (
	"errors"
	"fmt"
	"io"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/game"
)

// ErrAborted is returned when the human player quits from a picker
var ErrAborted = errors.New("game aborted by player")

// HumanAgent asks the person at the terminal for every decision. Each
// decision runs its own short-lived Bubble Tea program.
type HumanAgent struct {
	logger *log.Logger
	run    func(m tea.Model) (tea.Model, error)
}

// NewHumanAgent creates an agent reading keys from in and drawing on out
func NewHumanAgent(in io.Reader, out io.Writer, logger *log.Logger) *HumanAgent {
	return &HumanAgent{
		logger: logger.WithPrefix("human"),
		run: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
		},
	}
}

// ChooseTrump offers the four suits, plus a pass when allowed
func (h *HumanAgent) ChooseTrump(state game.TrumpState) (game.TrumpChoice, error) {
	suits := deck.Suits()
	options := make([]option, 0, len(suits)+1)
	for _, s := range suits {
		options = append(options, option{label: RenderTrump(s), enabled: true})
	}
	if state.CanPass {
		options = append(options, option{label: "Pass", enabled: true})
	}

	i, err := h.pick(newPicker(RenderTrumpPrompt(state), options))
	if err != nil {
		return game.TrumpChoice{}, err
	}
	if i == len(suits) {
		h.logger.Info("Passing trump decision", "teammate", state.Teammate.Name)
		return game.TrumpChoice{Pass: true, Reasoning: "Passed by player"}, nil
	}
	h.logger.Info("Trump chosen", "suit", suits[i].Name())
	return game.TrumpChoice{Suit: suits[i], Reasoning: "Chosen by player"}, nil
}

// ChooseCard shows the whole hand; only allowed cards can be selected
func (h *HumanAgent) ChooseCard(state game.TurnState) (game.Decision, error) {
	options := make([]option, len(state.Hand))
	for i, c := range state.Hand {
		options[i] = option{label: RenderCard(c), enabled: slices.Contains(state.Allowed, c)}
	}

	i, err := h.pick(newPicker(RenderTurn(state), options))
	if err != nil {
		return game.Decision{}, err
	}
	c := state.Hand[i]
	h.logger.Info("Card chosen", "card", c, "trick", state.TrickNumber)
	return game.Decision{Card: c, Reasoning: "Chosen by player"}, nil
}

func (h *HumanAgent) pick(p *picker) (int, error) {
	final, err := h.run(p)
	if err != nil {
		return 0, fmt.Errorf("failed to run picker: %w", err)
	}
	result, ok := final.(*picker)
	if !ok || result.aborted || result.chosen < 0 {
		return 0, ErrAborted
	}
	return result.chosen, nil
}

var _ game.Agent = (*HumanAgent)(nil)
