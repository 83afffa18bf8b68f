package meld

import "rummy/internal/domain"

// MaximalMelds lists the maximal melds of cards without any search: one group per rank
// holding three or more suits, and one run per maximal consecutive same-suit segment of
// length three or more. The Ace is tried at both ends, so A-2-3 and Q-K-A of one suit are
// both reported even though they share a card. The result may overlap and is not a partition.
//
// This departs from a low-only Ace scan, under which Q-K-A never counts and an Ace never
// improves a Q-K pair. Scanning both ends keeps the count in line with the runs that
// OptimalPartition accepts.
//
// Cards of any count are accepted; malformed and repeated cards are ignored.
func MaximalMelds(cards []domain.Card) []Meld {
	var out []Meld
	slots := rankSlots(cards)
	for v := domain.Ace; v <= domain.King; v++ {
		if len(slots[v]) >= 3 {
			out = append(out, newMeld(Group, cards, slots[v]))
		}
	}
	for _, suit := range domain.Suits {
		out = appendSegments(out, cards, suitSlots(cards, suit))
	}
	return out
}

func appendSegments(out []Meld, cards []domain.Card, slots [domain.AceHigh + 1]int) []Meld {
	start := 0
	for v := domain.Ace; v <= domain.AceHigh+1; v++ {
		if v <= domain.AceHigh && slots[v] >= 0 {
			if start == 0 {
				start = v
			}
			continue
		}
		if start == 0 {
			continue
		}
		end := v - 1
		// A whole suit would place the Ace at both ends.
		if start == domain.Ace && end == domain.AceHigh {
			end = domain.King
		}
		if end-start+1 >= 3 {
			pos := make([]int, 0, end-start+1)
			for w := start; w <= end; w++ {
				pos = append(pos, slots[w])
			}
			out = append(out, newMeld(Run, cards, pos))
		}
		start = 0
	}
	return out
}

// MeldCount is the number of maximal melds in cards.
func MeldCount(cards []domain.Card) int {
	return len(MaximalMelds(cards))
}

// CardImprovesCoverage reports whether adding card to hand raises its maximal meld count.
// It is a cheap approximation for keep or discard decisions and never decides a Rummy.
func CardImprovesCoverage(hand []domain.Card, card domain.Card) bool {
	return MeldCount(domain.WithCard(hand, card)) > MeldCount(hand)
}

// InMaximalMeld marks the positions of cards that belong to at least one maximal meld.
func InMaximalMeld(cards []domain.Card) []bool {
	in := make([]bool, len(cards))
	for _, m := range MaximalMelds(cards) {
		for _, p := range m.Positions {
			in[p] = true
		}
	}
	return in
}
