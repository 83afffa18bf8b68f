package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four French suits.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the suits in canonical order. Run candidates are visited in this order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13

	// AceHigh is the effective value of an Ace placed after the King in a run.
	AceHigh = 14
)

var rankLabels = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is a single playing card. Cards are values; within one deck (Suit, Value) is unique.
type Card struct {
	Suit  Suit   `json:"suit"`
	Rank  string `json:"rank"`  // "A","2".."10","J","Q","K"
	Value int    `json:"value"` // 1..13 (A=1, J=11, Q=12, K=13)
}

// NewCard builds a card with the rank label derived from the value.
func NewCard(suit Suit, value int) Card {
	return Card{Suit: suit, Rank: RankLabel(value), Value: value}
}

// RankLabel returns the display label for a card value, or "" if out of range.
func RankLabel(value int) string {
	if value < Ace || value > King {
		return ""
	}
	return rankLabels[value]
}

// SuitIndex returns the position of s in Suits, or -1 if s is not a suit.
func SuitIndex(s Suit) int {
	for i, suit := range Suits {
		if suit == s {
			return i
		}
	}
	return -1
}

// String renders the card as rank followed by suit symbol, e.g. "Q♥".
func (c Card) String() string {
	rank := c.Rank
	if rank == "" {
		rank = RankLabel(c.Value)
	}
	return rank + string(c.Suit)
}

// ID is a dense identity in 0..51 for well-formed cards.
func (c Card) ID() int {
	return SuitIndex(c.Suit)*King + c.Value - 1
}

// ParseSuit accepts a suit symbol, its letter (S, H, D, C) or its English name.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "♠", "S", "SPADE", "SPADES":
		return Spades, nil
	case "♥", "H", "HEART", "HEARTS":
		return Hearts, nil
	case "♦", "D", "DIAMOND", "DIAMONDS":
		return Diamonds, nil
	case "♣", "C", "CLUB", "CLUBS":
		return Clubs, nil
	}
	return "", fmt.Errorf("unknown suit %q", s)
}

// ParseRank converts a rank label ("A", "7", "10", "T", "Q"...) to its value.
func ParseRank(s string) (int, error) {
	switch r := strings.ToUpper(strings.TrimSpace(s)); r {
	case "A":
		return Ace, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "T":
		return 10, nil
	default:
		v, err := strconv.Atoi(r)
		if err != nil || v < 2 || v > 10 {
			return 0, fmt.Errorf("unknown rank %q", s)
		}
		return v, nil
	}
}

// ParseCard parses short card notation such as "QH", "10♦", "as" or "4c".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("card %q too short", s)
	}
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	value, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return NewCard(suit, value), nil
}

// ParseCards parses every token with ParseCard, stopping at the first error.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
