package bot

import (
	"rummy/internal/domain"
)

// Level names a computer player strength.
type Level string

const (
	LevelBasic Level = "basic"
	LevelSmart Level = "smart"
)

// Brain is the interface that all bot strategies must implement.
//
// WantsDiscard is asked with a 10-card hand whether to take the face-up discard
// instead of drawing from the stock. ChooseDiscard is asked with the 11-card hand
// after the draw and returns the index of the card to throw.
type Brain interface {
	WantsDiscard(hand []domain.Card, top domain.Card) bool
	ChooseDiscard(hand []domain.Card) int
}

// Turn records what an agent did on its turn.
type Turn struct {
	TookDiscard bool          `json:"took_discard"`
	Drawn       domain.Card   `json:"drawn"`
	Discarded   domain.Card   `json:"discarded"`
	Hand        []domain.Card `json:"hand"`
}
