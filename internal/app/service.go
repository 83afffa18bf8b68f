package app

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"rummy/internal/domain"
	"rummy/internal/meld"
)

// Service contains rummy round use-cases operating on domain state.
// It is safe for concurrent use.
type Service struct {
	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrTooFewPlayers  = errors.New("not enough players to deal")
	ErrTooManyPlayers = errors.New("too many players for one deck")
	ErrNotRummy       = errors.New("winner's hand is not a rummy")
	ErrGameOver       = errors.New("game already won")
	ErrInvalidPlayer  = errors.New("invalid player id")
)

// Deal is a freshly dealt round.
type Deal struct {
	RoundID uuid.UUID                `json:"round_id"`
	Order   []string                 `json:"order"`
	Hands   map[string][]domain.Card `json:"hands"`
	// Stock is drawn from the front.
	Stock []domain.Card `json:"stock"`
	// Discard holds the turned-up starter; the last card is the top.
	Discard []domain.Card `json:"discard"`
}

// Seat pairs a player with the hand they hold at round end.
type Seat struct {
	UserID string
	Hand   []domain.Card
}

// Settlement is the evaluated outcome of a round.
type Settlement struct {
	RoundID uuid.UUID            `json:"round_id"`
	Winner  string               `json:"winner"`
	Loser   string               `json:"loser"`
	Rummy   meld.PartitionResult `json:"rummy"`
	Losing  meld.PartitionResult `json:"losing"`
	// Points is the loser's leftover value, credited to the winner.
	Points int `json:"points"`
}

// Deal shuffles a fresh deck and deals HandSize cards to each player alternately,
// in the given order, then turns up one card to start the discard pile.
// Player ids must be non-empty and distinct. Hands come back sorted by suit.
func (s *Service) Deal(playerIDs []string) (Deal, []Event, error) {
	if len(playerIDs) < MinPlayersToStartGame {
		return Deal{}, nil, ErrTooFewPlayers
	}
	if len(playerIDs) > MaxPlayers {
		return Deal{}, nil, fmt.Errorf("%w: %d seats", ErrTooManyPlayers, len(playerIDs))
	}
	seated := make(map[string]bool, len(playerIDs))
	for i, id := range playerIDs {
		if id == "" {
			return Deal{}, nil, fmt.Errorf("%w: empty id at seat %d", ErrInvalidPlayer, i)
		}
		if seated[id] {
			return Deal{}, nil, fmt.Errorf("%w: %s seated twice", ErrInvalidPlayer, id)
		}
		seated[id] = true
	}

	s.mu.Lock()
	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	s.mu.Unlock()
	d := Deal{
		RoundID: uuid.New(),
		Order:   append([]string(nil), playerIDs...),
		Hands:   make(map[string][]domain.Card, len(playerIDs)),
	}
	for _, id := range playerIDs {
		d.Hands[id] = make([]domain.Card, 0, domain.HandSize)
	}

	cardIdx := 0
	for round := 0; round < domain.HandSize; round++ {
		for _, id := range playerIDs {
			d.Hands[id] = append(d.Hands[id], deck[cardIdx])
			cardIdx++
		}
	}
	for _, id := range playerIDs {
		domain.SortHand(d.Hands[id])
	}
	d.Discard = []domain.Card{deck[cardIdx]}
	d.Stock = append([]domain.Card(nil), deck[cardIdx+1:]...)

	events := make([]Event, 0, len(playerIDs))
	for _, id := range playerIDs {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				RoundID: d.RoundID,
				UserID:  id,
				Hand:    d.Hands[id],
			},
			Recipients: []string{id},
		})
	}
	return d, events, nil
}

// SettleRound evaluates both hands after the winner's final discard.
// The winner must hold a rummy and the two hands must not share a card.
// The loser's leftover points are the round's award; its leftover cards are listed by value.
func (s *Service) SettleRound(roundID uuid.UUID, winner, loser Seat) (Settlement, error) {
	won, err := meld.EvaluateHand(winner.Hand)
	if err != nil {
		return Settlement{}, fmt.Errorf("winner %s: %w", winner.UserID, err)
	}
	if !won.IsComplete {
		return Settlement{}, fmt.Errorf("%w: %s holds %d points", ErrNotRummy, winner.UserID, won.LeftoverPoints)
	}
	lost, err := meld.EvaluateHand(loser.Hand)
	if err != nil {
		return Settlement{}, fmt.Errorf("loser %s: %w", loser.UserID, err)
	}
	both := make([]domain.Card, 0, len(winner.Hand)+len(loser.Hand))
	both = append(append(both, winner.Hand...), loser.Hand...)
	if err := domain.ValidateCards(both); err != nil {
		return Settlement{}, fmt.Errorf("hands of %s and %s overlap: %w", winner.UserID, loser.UserID, err)
	}
	domain.SortByValue(lost.LeftoverCards)

	if roundID == uuid.Nil {
		roundID = uuid.New()
	}
	return Settlement{
		RoundID: roundID,
		Winner:  winner.UserID,
		Loser:   loser.UserID,
		Rummy:   won,
		Losing:  lost,
		Points:  lost.LeftoverPoints,
	}, nil
}

// Record credits a settlement to the winner's score card and reports whether the game is won.
func (s *Service) Record(card *ScoreCard, st Settlement, target int) ([]Event, error) {
	if card.HasWon(target) {
		return nil, ErrGameOver
	}
	total := card.AddRound(st.Points)
	events := []Event{{
		Kind: EventRoundSettled,
		Payload: RoundSettledPayload{
			RoundID: st.RoundID,
			Winner:  st.Winner,
			Loser:   st.Loser,
			Points:  st.Points,
			Total:   total,
			Melds:   st.Rummy.Melds,
		},
	}}
	if card.HasWon(target) {
		events = append(events, Event{
			Kind: EventGameWon,
			Payload: GameWonPayload{
				Winner: card.Player,
				Total:  total,
				Rounds: append([]int(nil), card.Rounds...),
			},
		})
	}
	return events, nil
}
