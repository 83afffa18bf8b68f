package bot

import (
	"errors"
	"fmt"

	"rummy/internal/domain"
)

var ErrBadDiscard = errors.New("brain chose a discard outside the hand")

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent playing at the given level.
func NewAgent(id, name string, level Level) (*Agent, error) {
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: id, Name: name, Strategy: brain}, nil
}

// Play runs one draw and discard for the agent. top is the face-up discard and draw pulls
// from the stock; draw is only called when the agent passes on top.
func (a *Agent) Play(hand []domain.Card, top domain.Card, draw func() (domain.Card, error)) (Turn, error) {
	turn := Turn{Drawn: top}
	if a.Strategy.WantsDiscard(hand, top) {
		turn.TookDiscard = true
	} else {
		card, err := draw()
		if err != nil {
			return Turn{}, fmt.Errorf("agent %s draw: %w", a.ID, err)
		}
		turn.Drawn = card
	}

	held := domain.WithCard(hand, turn.Drawn)
	i := a.Strategy.ChooseDiscard(held)
	if i < 0 || i >= len(held) {
		return Turn{}, fmt.Errorf("agent %s: %w: %d", a.ID, ErrBadDiscard, i)
	}
	turn.Discarded = held[i]
	turn.Hand = domain.RemoveAt(held, i)
	return turn, nil
}
