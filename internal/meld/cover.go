package meld

import "rummy/internal/domain"

// CanFullyCover reports whether every card of cards belongs to some set of disjoint melds.
// An empty input is trivially covered. Inputs larger than MaxCards are rejected.
func CanFullyCover(cards []domain.Card) (bool, error) {
	if err := checkSearchable(cards); err != nil {
		return false, err
	}
	return canCover(cards), nil
}

func canCover(cards []domain.Card) bool {
	if len(cards) == 0 {
		return true
	}
	cands := candidates(cards)
	byPos := make([][]uint16, len(cards))
	for _, m := range cands {
		mask := m.mask()
		for _, p := range m.Positions {
			byPos[p] = append(byPos[p], mask)
		}
	}
	full := uint16(1)<<uint(len(cards)) - 1
	return coverFrom(byPos, 0, full)
}

// coverFrom branches only on melds containing the lowest uncovered position, which
// must be covered by one of them.
func coverFrom(byPos [][]uint16, used, full uint16) bool {
	if used == full {
		return true
	}
	first := 0
	for used&(1<<uint(first)) != 0 {
		first++
	}
	for _, mask := range byPos[first] {
		if mask&used != 0 {
			continue
		}
		if coverFrom(byPos, used|mask, full) {
			return true
		}
	}
	return false
}
