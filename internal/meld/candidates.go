package meld

import (
	"fmt"

	"rummy/internal/domain"
)

// GenerateCandidates lists every group and run that can be formed from hand, overlapping freely.
//
// A rank holding four cards yields the 4-group followed by its four 3-card subsets, so one
// member can be lent to a run. Each suit yields every contiguous sub-run of length 3 or more,
// with the Ace placed low (value 1) or high (value 14) but never both. Candidates come back in
// search order: groups by ascending rank, then runs by suit (♠ ♥ ♦ ♣), start value and length.
func GenerateCandidates(hand []domain.Card) ([]Meld, error) {
	if err := checkSearchable(hand); err != nil {
		return nil, err
	}
	return candidates(hand), nil
}

func checkSearchable(hand []domain.Card) error {
	if len(hand) > MaxCards {
		return &domain.InvalidHandError{
			Reason: fmt.Sprintf("hand has %d cards, search is bounded to %d", len(hand), MaxCards),
			Index:  -1,
		}
	}
	return domain.ValidateCards(hand)
}

func candidates(hand []domain.Card) []Meld {
	var out []Meld
	out = appendGroups(out, hand)
	out = appendRuns(out, hand)
	return out
}

// rankSlots maps each value to the hand positions holding it, one per suit, in hand order.
func rankSlots(hand []domain.Card) [domain.King + 1][]int {
	var slots [domain.King + 1][]int
	var seen [domain.King + 1][len(domain.Suits)]bool
	for pos, c := range hand {
		s := domain.SuitIndex(c.Suit)
		if s < 0 || c.Value < domain.Ace || c.Value > domain.King || seen[c.Value][s] {
			continue
		}
		seen[c.Value][s] = true
		slots[c.Value] = append(slots[c.Value], pos)
	}
	return slots
}

// suitSlots maps effective values 1..14 of one suit to a hand position, or -1.
// Index 14 mirrors the Ace at index 1.
func suitSlots(hand []domain.Card, suit domain.Suit) [domain.AceHigh + 1]int {
	var slots [domain.AceHigh + 1]int
	for i := range slots {
		slots[i] = -1
	}
	for pos, c := range hand {
		if c.Suit != suit || c.Value < domain.Ace || c.Value > domain.King || slots[c.Value] >= 0 {
			continue
		}
		slots[c.Value] = pos
	}
	slots[domain.AceHigh] = slots[domain.Ace]
	return slots
}

func appendGroups(out []Meld, hand []domain.Card) []Meld {
	slots := rankSlots(hand)
	for v := domain.Ace; v <= domain.King; v++ {
		pos := slots[v]
		if len(pos) < 3 {
			continue
		}
		if len(pos) == 4 {
			out = append(out, newMeld(Group, hand, pos))
		}
		for i := 0; i < len(pos)-2; i++ {
			for j := i + 1; j < len(pos)-1; j++ {
				for k := j + 1; k < len(pos); k++ {
					out = append(out, newMeld(Group, hand, []int{pos[i], pos[j], pos[k]}))
				}
			}
		}
	}
	return out
}

func appendRuns(out []Meld, hand []domain.Card) []Meld {
	for _, suit := range domain.Suits {
		slots := suitSlots(hand, suit)
		for start := domain.Ace; start <= domain.Queen; start++ {
			if slots[start] < 0 {
				continue
			}
			for end := start + 1; end <= domain.AceHigh; end++ {
				// A run from the low Ace up to the high Ace would hold the same card twice.
				if slots[end] < 0 || (start == domain.Ace && end == domain.AceHigh) {
					break
				}
				if end-start+1 < 3 {
					continue
				}
				pos := make([]int, 0, end-start+1)
				for v := start; v <= end; v++ {
					pos = append(pos, slots[v])
				}
				out = append(out, newMeld(Run, hand, pos))
			}
		}
	}
	return out
}

func newMeld(kind Kind, hand []domain.Card, pos []int) Meld {
	positions := append([]int(nil), pos...)
	cards := make([]domain.Card, len(positions))
	for i, p := range positions {
		cards[i] = hand[p]
	}
	return Meld{Kind: kind, Cards: cards, Positions: positions}
}
