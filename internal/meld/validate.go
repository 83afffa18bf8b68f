package meld

import (
	"errors"
	"fmt"
	"sort"

	"rummy/internal/domain"
)

var (
	ErrGroupSize         = errors.New("group must hold 3 or 4 cards")
	ErrGroupRank         = errors.New("group cards must share a rank")
	ErrGroupSuit         = errors.New("group cards must have distinct suits")
	ErrRunSize           = errors.New("run must hold at least 3 cards")
	ErrRunSuit           = errors.New("run cards must share a suit")
	ErrRunNotConsecutive = errors.New("run values must be consecutive")
	ErrUnknownKind       = errors.New("unknown meld kind")
)

// Validate checks that m is a legal meld of its declared kind.
func Validate(m Meld) error {
	switch m.Kind {
	case Group:
		return validateGroup(m.Cards)
	case Run:
		return validateRun(m.Cards)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(m.Kind))
	}
}

func validateGroup(cards []domain.Card) error {
	if len(cards) < 3 || len(cards) > 4 {
		return ErrGroupSize
	}
	seen := make(map[domain.Suit]bool, len(cards))
	for _, c := range cards {
		if c.Value != cards[0].Value {
			return ErrGroupRank
		}
		if seen[c.Suit] {
			return ErrGroupSuit
		}
		seen[c.Suit] = true
	}
	return nil
}

func validateRun(cards []domain.Card) error {
	if len(cards) < 3 {
		return ErrRunSize
	}
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			return ErrRunSuit
		}
	}
	if consecutive(cards, false) || consecutive(cards, true) {
		return nil
	}
	return ErrRunNotConsecutive
}

// consecutive checks the effective values of cards, counting Aces as 14 when aceHigh is set.
// Duplicate values fail, so an Ace can never sit at both ends.
func consecutive(cards []domain.Card, aceHigh bool) bool {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value
		if aceHigh && c.Value == domain.Ace {
			values[i] = domain.AceHigh
		}
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}
