package bot

import (
	"rummy/internal/domain"
	"rummy/internal/meld"
)

// SmartBot runs the optimizer over every possible discard.
type SmartBot struct{}

func (b *SmartBot) WantsDiscard(hand []domain.Card, top domain.Card) bool {
	if meld.CardImprovesCoverage(hand, top) {
		return true
	}
	current, err := meld.OptimalPartition(hand)
	if err != nil {
		return false
	}
	with := domain.WithCard(hand, top)
	_, points, ok := bestDiscard(with)
	return ok && points < current.LeftoverPoints
}

func (b *SmartBot) ChooseDiscard(hand []domain.Card) int {
	i, _, ok := bestDiscard(hand)
	if !ok {
		// The hand is not searchable as 10 cards plus one; throw the last card.
		return len(hand) - 1
	}
	return i
}

// bestDiscard returns the index whose removal leaves the lowest optimal leftover.
// Ties go to the higher point value, then to the later position.
func bestDiscard(hand []domain.Card) (index, points int, ok bool) {
	index = -1
	for i, c := range hand {
		res, err := meld.OptimalPartition(domain.RemoveAt(hand, i))
		if err != nil {
			return -1, 0, false
		}
		switch {
		case index < 0,
			res.LeftoverPoints < points,
			res.LeftoverPoints == points && domain.PointValue(c) >= domain.PointValue(hand[index]):
			index, points = i, res.LeftoverPoints
		}
	}
	return index, points, index >= 0
}
