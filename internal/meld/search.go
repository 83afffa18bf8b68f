package meld

import "rummy/internal/domain"

// OptimalPartition finds the set of disjoint melds that leaves the lowest leftover point value.
//
// Candidates are tried in GenerateCandidates order and the best partition is replaced only on
// strict improvement, so among tied partitions the first one reached wins. A partition with no
// leftover points ends the search.
func OptimalPartition(hand []domain.Card) (PartitionResult, error) {
	if err := domain.ValidateHand(hand); err != nil {
		return PartitionResult{}, err
	}
	return optimalPartition(hand), nil
}

// optimalPartition expects a hand that passed checkSearchable.
func optimalPartition(hand []domain.Card) PartitionResult {
	s := newSearcher(hand)
	s.bestPoints = s.leftover(0)
	s.visit(0, 0)
	return s.result()
}

type searcher struct {
	hand       []domain.Card
	points     []int
	candidates []Meld
	masks      []uint16

	chosen     []int
	best       []int
	bestPoints int
	bestUsed   uint16
	done       bool
}

func newSearcher(hand []domain.Card) *searcher {
	cands := candidates(hand)
	s := &searcher{
		hand:       hand,
		points:     make([]int, len(hand)),
		candidates: cands,
		masks:      make([]uint16, len(cands)),
	}
	for i, c := range hand {
		s.points[i] = domain.PointValue(c)
	}
	for i, m := range cands {
		s.masks[i] = m.mask()
	}
	return s
}

func (s *searcher) leftover(used uint16) int {
	total := 0
	for i, p := range s.points {
		if used&(1<<uint(i)) == 0 {
			total += p
		}
	}
	return total
}

// visit records the node for used, then extends it with every later disjoint candidate.
// Skipping a candidate is implicit: the loop moves on without choosing it.
func (s *searcher) visit(start int, used uint16) {
	if points := s.leftover(used); points < s.bestPoints {
		s.bestPoints = points
		s.bestUsed = used
		s.best = append(s.best[:0], s.chosen...)
		if points == 0 {
			s.done = true
			return
		}
	}
	for i := start; i < len(s.candidates) && !s.done; i++ {
		if s.masks[i]&used != 0 {
			continue
		}
		s.chosen = append(s.chosen, i)
		s.visit(i+1, used|s.masks[i])
		s.chosen = s.chosen[:len(s.chosen)-1]
	}
}

func (s *searcher) result() PartitionResult {
	res := PartitionResult{
		Melds:          make([]Meld, 0, len(s.best)),
		LeftoverCards:  make([]domain.Card, 0, len(s.hand)),
		LeftoverPoints: s.bestPoints,
		IsComplete:     s.bestPoints == 0,
	}
	for _, i := range s.best {
		res.Melds = append(res.Melds, s.candidates[i])
	}
	for i, c := range s.hand {
		if s.bestUsed&(1<<uint(i)) == 0 {
			res.LeftoverCards = append(res.LeftoverCards, c)
		}
	}
	return res
}
