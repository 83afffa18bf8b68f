package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}

	seen := make(map[int]bool)
	for _, c := range deck {
		if err := ValidateCard(c); err != nil {
			t.Fatalf("deck card %v invalid: %v", c, err)
		}
		if seen[c.ID()] {
			t.Fatalf("duplicate card found: %s", c)
		}
		seen[c.ID()] = true
	}
}

func TestShuffleDeckKeepsCardsAndInput(t *testing.T) {
	deck := NewDeck()
	shuffled := ShuffleDeck(deck, rand.New(rand.NewSource(7)))

	if !reflect.DeepEqual(deck, NewDeck()) {
		t.Fatalf("ShuffleDeck mutated its input")
	}
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffled size = %d, want %d", len(shuffled), len(deck))
	}
	if reflect.DeepEqual(shuffled, deck) {
		t.Fatalf("shuffled deck is still in order")
	}
	if err := ValidateCards(shuffled); err != nil {
		t.Fatalf("shuffled deck invalid: %v", err)
	}
}

func TestRemoveAtAndWithCard(t *testing.T) {
	hand := []Card{NewCard(Spades, 1), NewCard(Hearts, 2), NewCard(Clubs, 3)}

	got := RemoveAt(hand, 1)
	if want := []Card{NewCard(Spades, 1), NewCard(Clubs, 3)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("RemoveAt() = %v, want %v", got, want)
	}

	grown := WithCard(hand, NewCard(Diamonds, 9))
	if len(grown) != 4 || len(hand) != 3 {
		t.Fatalf("WithCard() len = %d (input %d), want 4 (3)", len(grown), len(hand))
	}
}

func TestSortHand(t *testing.T) {
	hand := []Card{NewCard(Clubs, 2), NewCard(Spades, 13), NewCard(Spades, 1), NewCard(Hearts, 5)}
	SortHand(hand)

	want := []Card{NewCard(Spades, 1), NewCard(Spades, 13), NewCard(Hearts, 5), NewCard(Clubs, 2)}
	if !reflect.DeepEqual(hand, want) {
		t.Fatalf("SortHand() = %v, want %v", hand, want)
	}
}

func TestSortByValue(t *testing.T) {
	cards := []Card{NewCard(Clubs, 9), NewCard(Hearts, 2), NewCard(Spades, 9), NewCard(Diamonds, 1)}
	SortByValue(cards)

	want := []Card{NewCard(Diamonds, 1), NewCard(Hearts, 2), NewCard(Spades, 9), NewCard(Clubs, 9)}
	if !reflect.DeepEqual(cards, want) {
		t.Fatalf("SortByValue() = %v, want %v", cards, want)
	}
}
