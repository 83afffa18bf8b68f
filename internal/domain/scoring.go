package domain

// PointValue is the deadwood value of a card: 10 for 10, J, Q and K, otherwise its face value.
func PointValue(c Card) int {
	if c.Value >= 10 {
		return 10
	}
	return c.Value
}

// HandValue sums PointValue over cards.
func HandValue(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += PointValue(c)
	}
	return total
}
