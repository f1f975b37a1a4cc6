package game

import (
	"time"

	"github.com/teemoo7/jass-game/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart    EventType = "round_start"
	EventTypeTrumpDecided  EventType = "trump_decided"
	EventTypeCardPlayed    EventType = "card_played"
	EventTypeMeldsResolved EventType = "melds_resolved"
	EventTypeTrickComplete EventType = "trick_complete"
	EventTypeRoundEnd      EventType = "round_end"
	EventTypeGameEnd       EventType = "game_end"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published after cards are dealt
type RoundStartEvent struct {
	Round     *Round
	Decider   *Player
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// TrumpDecidedEvent is published once trump is fixed
type TrumpDecidedEvent struct {
	Round     *Round
	Trump     deck.Suit
	Decider   *Player
	Chooser   *Player
	Passed    bool
	Reasoning string
	timestamp time.Time
}

func (e TrumpDecidedEvent) EventType() EventType { return EventTypeTrumpDecided }
func (e TrumpDecidedEvent) Timestamp() time.Time { return e.timestamp }

// CardPlayedEvent is published after every accepted play
type CardPlayedEvent struct {
	Round     *Round
	Player    *Player
	Card      deck.Card
	Trick     *Trick // Snapshot including this play
	Reasoning string
	timestamp time.Time
}

func (e CardPlayedEvent) EventType() EventType { return EventTypeCardPlayed }
func (e CardPlayedEvent) Timestamp() time.Time { return e.timestamp }

// MeldsResolvedEvent is published after the first trick when any meld was
// declared
type MeldsResolvedEvent struct {
	Round     *Round
	Team      *Team
	Melds     []PlayerMeld
	Points    int
	timestamp time.Time
}

func (e MeldsResolvedEvent) EventType() EventType { return EventTypeMeldsResolved }
func (e MeldsResolvedEvent) Timestamp() time.Time { return e.timestamp }

// TrickCompleteEvent is published when a trick has been scored
type TrickCompleteEvent struct {
	Round     *Round
	Result    TrickResult
	timestamp time.Time
}

func (e TrickCompleteEvent) EventType() EventType { return EventTypeTrickComplete }
func (e TrickCompleteEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published when the round scores have been folded into the
// game
type RoundEndEvent struct {
	Round      *Round
	Scores     map[*Team]int // Raw round points
	Multiplier int
	Totals     map[*Team]int // Cumulative game scores
	timestamp  time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// GameEndEvent is published when a team reaches the target score
type GameEndEvent struct {
	GameID    string
	Winner    *Team
	Totals    map[*Team]int
	Rounds    int
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
