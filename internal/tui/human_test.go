package tui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/game"
)

// scriptedHuman replays keys into the picker instead of reading a terminal
func scriptedHuman(keys ...tea.KeyMsg) *HumanAgent {
	return &HumanAgent{
		logger: log.New(io.Discard),
		run: func(m tea.Model) (tea.Model, error) {
			for _, k := range keys {
				var cmd tea.Cmd
				m, cmd = m.Update(k)
				if cmd != nil {
					if _, ok := cmd().(tea.QuitMsg); ok {
						break
					}
				}
			}
			return m, nil
		},
	}
}

func turnState(hand string, trick *game.Trick) game.TurnState {
	me := game.NewHuman("Me")
	mate := game.NewBot("Top", game.LevelHard)
	cards := deck.MustParseCards(hand)
	return game.TurnState{
		Player:      me,
		Teammate:    mate,
		Hand:        cards,
		Allowed:     game.LegalCards(cards, trick),
		Trump:       trick.Trump,
		Trick:       trick,
		TrickNumber: 1,
		RoundNumber: 1,
	}
}

func TestHumanChoosesOnlyAllowedCards(t *testing.T) {
	SetColor(false)
	opponent := game.NewBot("Right", game.LevelEasy)
	trick := game.NewTrick(deck.Hearts)
	trick.Add(opponent, deck.MustParseCards("S6")[0])

	// Hand sorted H, C, D, S: the only spades are the last two cards
	state := turnState("H7 C8 D9 S8 SK", trick)
	require.Len(t, state.Allowed, 3)

	h := scriptedHuman(keyPress(tea.KeyRight), keyPress(tea.KeyEnter))
	decision, err := h.ChooseCard(state)
	require.NoError(t, err)

	// Cursor starts on the first allowed card (H7 as a trump), then moves to S8
	assert.Equal(t, deck.MustParseCards("S8")[0], decision.Card)
	assert.Contains(t, state.Allowed, decision.Card)
}

func TestHumanAbortsCardChoice(t *testing.T) {
	state := turnState("H7 C8", game.NewTrick(deck.Hearts))
	h := scriptedHuman(runePress('q'))

	_, err := h.ChooseCard(state)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestHumanTrumpChoice(t *testing.T) {
	me := game.NewHuman("Me")
	mate := game.NewBot("Top", game.LevelHard)
	state := game.TrumpState{
		Player:      me,
		Teammate:    mate,
		Hand:        deck.MustParseCards("H6 H7 C6 C7 D6 D7 S6 S7 SA"),
		CanPass:     true,
		RoundNumber: 1,
	}

	choice, err := scriptedHuman(keyPress(tea.KeyRight), keyPress(tea.KeyEnter)).ChooseTrump(state)
	require.NoError(t, err)
	assert.False(t, choice.Pass)
	assert.Equal(t, deck.Clubs, choice.Suit)

	keys := []tea.KeyMsg{keyPress(tea.KeyRight), keyPress(tea.KeyRight), keyPress(tea.KeyRight), keyPress(tea.KeyRight), keyPress(tea.KeyEnter)}
	choice, err = scriptedHuman(keys...).ChooseTrump(state)
	require.NoError(t, err)
	assert.True(t, choice.Pass)

	state.CanPass = false
	choice, err = scriptedHuman(keys...).ChooseTrump(state)
	require.NoError(t, err)
	assert.False(t, choice.Pass, "pass is not offered after a pass")
	assert.Equal(t, deck.Spades, choice.Suit)
}

func TestHumanPickerFailure(t *testing.T) {
	boom := errors.New("no terminal")
	h := &HumanAgent{
		logger: log.New(io.Discard),
		run:    func(m tea.Model) (tea.Model, error) { return m, boom },
	}
	_, err := h.ChooseCard(turnState("H7", game.NewTrick(deck.Hearts)))
	assert.ErrorIs(t, err, boom)
}
