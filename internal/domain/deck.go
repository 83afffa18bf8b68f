package domain

import (
	"math/rand"
	"sort"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// NewDeck returns an ordered 52-card deck, rank-major (A♠ A♥ A♦ A♣ 2♠ ...).
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for v := Ace; v <= King; v++ {
		for _, s := range Suits {
			deck = append(deck, NewCard(s, v))
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortHand orders cards by suit, then ascending value.
func SortHand(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cardOrder(cards[i]) < cardOrder(cards[j])
	})
}

// SortByValue orders cards by ascending value, then suit.
func SortByValue(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Value != cards[j].Value {
			return cards[i].Value < cards[j].Value
		}
		return SuitIndex(cards[i].Suit) < SuitIndex(cards[j].Suit)
	})
}

func cardOrder(c Card) int {
	return SuitIndex(c.Suit)*16 + c.Value
}
