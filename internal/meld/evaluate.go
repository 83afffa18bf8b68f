package meld

import "rummy/internal/domain"

// EvaluateHand is the entry point for round-end checks. It returns the optimal partition of a
// 10-card hand; IsComplete marks a Rummy.
func EvaluateHand(hand []domain.Card) (PartitionResult, error) {
	return OptimalPartition(hand)
}
