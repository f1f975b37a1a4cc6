// Package game implements the rules of a four player, two team Jass game
// played with a 36 card deck.
//
// A Game holds two fixed teams and their cumulative scores. Each cycle the
// Engine deals a new Round, asks the trump decider (or, after a pass, the
// decider's teammate) for a trump suit and then plays nine tricks of four
// cards. Melds held at the start of the first trick are resolved as soon as
// that trick is full; the ninth trick carries a five point bonus. The game
// ends when a team reaches the mode's target score.
//
// # Basic Usage
//
//	teams := [2]*game.Team{
//	    game.NewTeam("North-South", game.NewHuman("You"), game.NewBot("Partner", game.LevelHard)),
//	    game.NewTeam("East-West", game.NewBot("East", game.LevelMedium), game.NewBot("West", game.LevelMedium)),
//	}
//	g, _ := game.NewGame(gameid.Generate(), teams, game.ModeNormal)
//	engine, _ := game.NewEngine(g, agents, randutil.New(seed), logger)
//	winner, err := engine.Run()
//
// # Driving a Round by Hand
//
// Round can also be driven directly, which is how tests exercise the rules:
//
//	r, _ := game.NewRound(1, teams, game.ModeNormal, nil, rng)
//	_ = r.DecideTrump(deck.Hearts, r.TrumpDecider)
//	for !r.IsComplete() {
//	    p, _ := r.NextToPlay()
//	    allowed, _ := r.AllowedCards(p)
//	    _ = r.Play(p, allowed[0])
//	    if r.CurrentTrick().IsComplete() {
//	        _, _ = r.FinishTrick()
//	    }
//	}
//
// Rounds are not safe for concurrent use. Independent games may run in
// parallel as long as each owns its own random source.
package game
