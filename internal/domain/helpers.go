package domain

// RemoveAt returns a copy of hand without the card at index i.
func RemoveAt(hand []Card, i int) []Card {
	out := make([]Card, 0, len(hand))
	out = append(out, hand[:i]...)
	return append(out, hand[i+1:]...)
}

// WithCard returns a copy of hand with card appended.
func WithCard(hand []Card, card Card) []Card {
	out := make([]Card, 0, len(hand)+1)
	out = append(out, hand...)
	return append(out, card)
}
