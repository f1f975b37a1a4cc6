package tui

import (
	"fmt"
	"io"

	"github.com/teemoo7/jass-game/internal/game"
)

// Observer prints game events as a running commentary of the table
type Observer struct {
	out    io.Writer
	target int
	teams  [2]*game.Team
}

// NewObserver creates an observer for g writing to out
func NewObserver(out io.Writer, g *game.Game) *Observer {
	return &Observer{out: out, target: g.TargetScore(), teams: g.Teams}
}

// OnEvent implements game.EventSubscriber
func (o *Observer) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		o.println("")
		o.println(HeaderStyle.Render(fmt.Sprintf("Round %d", e.Round.Number)))
		o.println(fmt.Sprintf("%s decides trump", e.Decider.Name))

	case game.TrumpDecidedEvent:
		if e.Passed {
			o.println(fmt.Sprintf("%s passed to %s", e.Decider.Name, e.Chooser.Name))
		}
		o.println(fmt.Sprintf("%s chose %s", e.Chooser.Name, RenderTrump(e.Trump)))

	case game.CardPlayedEvent:
		o.println(fmt.Sprintf("  %s plays %s", e.Player.Name, RenderCard(e.Card)))

	case game.MeldsResolvedEvent:
		o.println(WarningStyle.Render(fmt.Sprintf("%s scores %d for melds", e.Team.Name, e.Points)))
		o.println(RenderMelds(e.Melds))

	case game.TrickCompleteEvent:
		r := e.Result
		o.println(InfoStyle.Render(fmt.Sprintf("Trick %d to %s with %s (%d points)",
			r.Number, r.Winner.Player.Name, r.Winner.Card, r.Points)))

	case game.RoundEndEvent:
		for _, t := range o.teams {
			o.println(fmt.Sprintf("%s made %d", t.Name, e.Scores[t]))
		}
		if e.Multiplier > 1 {
			o.println(WarningStyle.Render(fmt.Sprintf("Round counts x%d", e.Multiplier)))
		}
		o.println(BoxStyle.Render(RenderScores(o.teams, e.Totals, o.target)))

	case game.GameEndEvent:
		o.println("")
		o.println(SuccessStyle.Render(fmt.Sprintf("%s wins after %d rounds!", e.Winner.Name, e.Rounds)))
		o.println(RenderScores(o.teams, e.Totals, o.target))
	}
}

func (o *Observer) println(s string) {
	fmt.Fprintln(o.out, s)
}

var _ game.EventSubscriber = (*Observer)(nil)
