// Package meld decomposes a rummy hand into groups and runs.
//
// Every exported operation is a pure function of its input: hands are never
// mutated and no state is kept between calls, so callers may evaluate
// independent hand snapshots concurrently.
package meld

import (
	"fmt"
	"strings"

	"rummy/internal/domain"
)

// MaxCards bounds the hands the exhaustive searches accept. Larger inputs are rejected
// before any candidate is generated.
const MaxCards = 16

// Kind tags a meld as a Group or a Run.
type Kind int

const (
	// Group is 3 or 4 cards of one rank in distinct suits.
	Group Kind = iota + 1
	// Run is 3 or more cards of one suit with consecutive values.
	Run
)

func (k Kind) String() string {
	switch k {
	case Group:
		return "group"
	case Run:
		return "run"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind as "group" or "run".
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Group, Run:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown meld kind %d", int(k))
	}
}

// UnmarshalText decodes "group" or "run".
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "group":
		*k = Group
	case "run":
		*k = Run
	default:
		return fmt.Errorf("unknown meld kind %q", text)
	}
	return nil
}

// Meld is a scoring unit drawn from a hand.
// Positions holds the hand index of each card in Cards, in the same order.
// Run cards are ordered by ascending effective value, so an ace-high run ends with the Ace.
type Meld struct {
	Kind      Kind          `json:"kind"`
	Cards     []domain.Card `json:"cards"`
	Positions []int         `json:"-"`
}

func (m Meld) String() string {
	parts := make([]string, len(m.Cards))
	for i, c := range m.Cards {
		parts[i] = c.String()
	}
	return m.Kind.String() + "[" + strings.Join(parts, " ") + "]"
}

// AceHigh reports whether m is a run that places its Ace after the King.
func (m Meld) AceHigh() bool {
	n := len(m.Cards)
	return m.Kind == Run && n > 0 && m.Cards[n-1].Value == domain.Ace
}

func (m Meld) mask() uint16 {
	var bits uint16
	for _, p := range m.Positions {
		bits |= 1 << uint(p)
	}
	return bits
}

// PartitionResult is a disjoint split of a hand into melds and leftover cards.
type PartitionResult struct {
	Melds          []Meld        `json:"melds"`
	LeftoverCards  []domain.Card `json:"leftover_cards"`
	LeftoverPoints int           `json:"leftover_points"`
	IsComplete     bool          `json:"is_complete"`
}
