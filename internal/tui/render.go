package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/teemoo7/jass-game/internal/deck"
	"github.com/teemoo7/jass-game/internal/game"
)

// RenderCard renders a card in its suit color
func RenderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// RenderCards renders cards separated by spaces
func RenderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderTrump renders the trump suit
func RenderTrump(s deck.Suit) string {
	return TrumpStyle.Render(fmt.Sprintf("%s %s", s, s.Name()))
}

// RenderTrick renders the plays of a trick in order, marking the current
// winner
func RenderTrick(t *game.Trick) string {
	if t == nil || t.IsEmpty() {
		return InfoStyle.Render("(no cards played)")
	}
	winner, _ := t.Winner()
	lines := make([]string, 0, t.Len())
	for _, pc := range t.Plays {
		line := fmt.Sprintf("%-8s %s", pc.Player.Name, RenderCard(pc.Card))
		if pc == winner {
			line += " " + SuccessStyle.Render("*")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderScores renders the scoreboard of both teams against the target
func RenderScores(teams [2]*game.Team, scores map[*game.Team]int, target int) string {
	var sb strings.Builder
	for i, t := range teams {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%-10s %4d / %d", t.Name, scores[t], target)
	}
	return sb.String()
}

// RenderTurn renders what a player needs to see before choosing a card
func RenderTurn(state game.TurnState) string {
	header := HeaderStyle.Render(fmt.Sprintf("Round %d - Trick %d", state.RoundNumber, state.TrickNumber))
	trump := "Trump: " + RenderTrump(state.Trump)
	if state.TrumpChooser != nil {
		trump += InfoStyle.Render(fmt.Sprintf(" (chosen by %s)", state.TrumpChooser.Name))
	}
	trick := BoxStyle.Render(RenderTrick(state.Trick))
	return lipgloss.JoinVertical(lipgloss.Left, header, trump, trick)
}

// RenderTrumpPrompt renders the hand offered to a trump decision
func RenderTrumpPrompt(state game.TrumpState) string {
	header := HeaderStyle.Render(fmt.Sprintf("Round %d - Choose trump", state.RoundNumber))
	hand := "Your hand: " + RenderCards(state.Hand)
	lines := []string{header, hand}
	if state.CanPass {
		lines = append(lines, InfoStyle.Render(fmt.Sprintf("You may pass to %s", state.Teammate.Name)))
	} else {
		lines = append(lines, WarningStyle.Render(fmt.Sprintf("%s passed, you must choose", state.Teammate.Name)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderMelds renders resolved melds, one per line
func RenderMelds(melds []game.PlayerMeld) string {
	lines := make([]string, len(melds))
	for i, pm := range melds {
		lines[i] = fmt.Sprintf("  %s: %s", pm.Player.Name, pm.Meld)
	}
	return strings.Join(lines, "\n")
}
