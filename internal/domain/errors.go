package domain

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards a hand holds when it is evaluated.
const HandSize = 10

// ErrInvalidHand matches every *InvalidHandError through errors.Is.
var ErrInvalidHand = errors.New("invalid hand")

// InvalidHandError reports a hand that breaks the evaluation contract.
// Index is the position of the offending card, or -1 when the hand as a whole is at fault.
type InvalidHandError struct {
	Reason string
	Index  int
	Card   Card
}

func (e *InvalidHandError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid hand: %s", e.Reason)
	}
	return fmt.Sprintf("invalid hand: %s at position %d (%+v)", e.Reason, e.Index, e.Card)
}

// Is makes errors.Is(err, ErrInvalidHand) hold.
func (e *InvalidHandError) Is(target error) bool {
	return target == ErrInvalidHand
}

// ValidateCard checks a single card's fields.
func ValidateCard(c Card) error {
	if SuitIndex(c.Suit) < 0 {
		return &InvalidHandError{Reason: "unknown suit", Index: -1, Card: c}
	}
	if c.Value < Ace || c.Value > King {
		return &InvalidHandError{Reason: "value out of range", Index: -1, Card: c}
	}
	if c.Rank != RankLabel(c.Value) {
		return &InvalidHandError{Reason: "rank does not match value", Index: -1, Card: c}
	}
	return nil
}

// ValidateCards checks every card and rejects duplicates, without constraining the count.
func ValidateCards(cards []Card) error {
	var seen [DeckSize]bool
	for i, c := range cards {
		if err := ValidateCard(c); err != nil {
			var ih *InvalidHandError
			if errors.As(err, &ih) {
				ih.Index = i
			}
			return err
		}
		id := c.ID()
		if seen[id] {
			return &InvalidHandError{Reason: "duplicate card", Index: i, Card: c}
		}
		seen[id] = true
	}
	return nil
}

// ValidateHand enforces the evaluation contract: exactly HandSize well-formed, distinct cards.
func ValidateHand(hand []Card) error {
	if len(hand) != HandSize {
		return &InvalidHandError{
			Reason: fmt.Sprintf("hand has %d cards, want %d", len(hand), HandSize),
			Index:  -1,
		}
	}
	return ValidateCards(hand)
}
