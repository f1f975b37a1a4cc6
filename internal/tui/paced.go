package tui

import (
	"time"

	"github.com/coder/quartz"
	"github.com/teemoo7/jass-game/internal/game"
)

// PacedAgent waits a fixed delay before each decision of the wrapped agent
// so that a human can follow bot play
type PacedAgent struct {
	agent game.Agent
	delay time.Duration
	clock quartz.Clock
}

// NewPacedAgent wraps agent. A zero delay delegates immediately.
func NewPacedAgent(agent game.Agent, delay time.Duration, clock quartz.Clock) *PacedAgent {
	return &PacedAgent{agent: agent, delay: delay, clock: clock}
}

func (p *PacedAgent) ChooseTrump(state game.TrumpState) (game.TrumpChoice, error) {
	p.wait()
	return p.agent.ChooseTrump(state)
}

func (p *PacedAgent) ChooseCard(state game.TurnState) (game.Decision, error) {
	p.wait()
	return p.agent.ChooseCard(state)
}

func (p *PacedAgent) wait() {
	if p.delay <= 0 {
		return
	}
	elapsed := make(chan struct{})
	timer := p.clock.AfterFunc(p.delay, func() {
		close(elapsed)
	})
	defer timer.Stop()
	<-elapsed
}

var _ game.Agent = (*PacedAgent)(nil)
