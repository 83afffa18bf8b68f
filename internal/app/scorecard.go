package app

// ScoreCard tracks the points one player has won across rounds.
type ScoreCard struct {
	Player string `json:"player"`
	Rounds []int  `json:"rounds"`
	Total  int    `json:"total"`
}

// AddRound records a round's award and returns the new total.
func (c *ScoreCard) AddRound(points int) int {
	c.Rounds = append(c.Rounds, points)
	c.Total += points
	return c.Total
}

// HasWon reports whether the total has reached target.
func (c *ScoreCard) HasWon(target int) bool {
	return c.Total >= target
}

func (c *ScoreCard) Reset() {
	c.Rounds = nil
	c.Total = 0
}
