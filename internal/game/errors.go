package game

import "errors"

// Invariant violations. These indicate a corrupted deck or seating and abort
// the round.
var (
	ErrLocatorCardNotFound = errors.New("no player holds the locator card")
	ErrNotTeamMember       = errors.New("player is not a member of the team")
	ErrUnknownPlayer       = errors.New("player is not seated in this game")
	ErrInvalidTeams        = errors.New("invalid teams")
	ErrMissingAgent        = errors.New("no agent registered for player")
)

// Play sequencing errors returned by Round.
var (
	ErrTrumpUndecided      = errors.New("trump suit has not been decided")
	ErrTrumpAlreadyDecided = errors.New("trump suit already decided")
	ErrRoundComplete       = errors.New("round is complete")
	ErrNotYourTurn         = errors.New("not this player's turn")
	ErrCardNotInHand       = errors.New("card is not in the player's hand")
	ErrIllegalCard         = errors.New("card is not allowed in this trick")
	ErrTrickIncomplete     = errors.New("trick is not complete")
	ErrTrickComplete       = errors.New("trick is already complete")
)
