package bot

import (
	"rummy/internal/domain"
	"rummy/internal/meld"
)

// BasicBot keeps whatever raises its maximal meld count and throws its lowest loose card.
type BasicBot struct{}

func (b *BasicBot) WantsDiscard(hand []domain.Card, top domain.Card) bool {
	return meld.CardImprovesCoverage(hand, top)
}

func (b *BasicBot) ChooseDiscard(hand []domain.Card) int {
	if len(hand) == 0 {
		return -1
	}
	in := meld.InMaximalMeld(hand)
	best := -1
	for i, c := range hand {
		if in[i] {
			continue
		}
		if best < 0 || c.Value < hand[best].Value {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	// Every card is in a meld; fall back to the lowest card overall.
	best = 0
	for i, c := range hand {
		if c.Value < hand[best].Value {
			best = i
		}
	}
	return best
}
