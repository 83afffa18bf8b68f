package app

import (
	"github.com/google/uuid"

	"rummy/internal/domain"
	"rummy/internal/meld"
)

// EventKind identifies emitted round events for dispatch by the transport layer.
type EventKind string

const (
	EventHandDealt    EventKind = "hand_dealt"
	EventRoundSettled EventKind = "round_settled"
	EventGameWon      EventKind = "game_won"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type HandDealtPayload struct {
	RoundID uuid.UUID
	UserID  string
	Hand    []domain.Card
}

type RoundSettledPayload struct {
	RoundID uuid.UUID
	Winner  string
	Loser   string
	Points  int
	Total   int
	Melds   []meld.Meld
}

type GameWonPayload struct {
	Winner string
	Total  int
	Rounds []int
}
