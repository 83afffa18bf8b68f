package bot

import (
	"errors"
	"strings"
	"testing"

	"rummy/internal/domain"
)

func parseHand(t *testing.T, s string) []domain.Card {
	t.Helper()
	cards, err := domain.ParseCards(strings.Fields(s))
	if err != nil {
		t.Fatalf("bad fixture %q: %v", s, err)
	}
	return cards
}

func parseCard(t *testing.T, s string) domain.Card {
	t.Helper()
	return parseHand(t, s)[0]
}

func TestNewBrain(t *testing.T) {
	tests := []struct {
		level   Level
		wantErr bool
	}{
		{level: LevelBasic},
		{level: LevelSmart},
		{level: "god", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			brain, err := NewBrain(tt.level)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLevel) {
					t.Fatalf("Expected ErrUnknownLevel, got %v", err)
				}
				return
			}
			if err != nil || brain == nil {
				t.Fatalf("NewBrain(%q) = %v, %v", tt.level, brain, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel(" Basic "); err != nil || l != LevelBasic {
		t.Fatalf("ParseLevel(Basic) = %q, %v", l, err)
	}
	if l, err := ParseLevel(""); err != nil || l != LevelSmart {
		t.Fatalf("ParseLevel(\"\") = %q, %v", l, err)
	}
	if _, err := ParseLevel("hard"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Expected ErrUnknownLevel, got %v", err)
	}
}

func TestBasicBot_ChooseDiscard(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want int
	}{
		{name: "lowest loose card", hand: "5S 5H 5D 2C 9H KD 3S 8C JD QC 4H", want: 3},
		{name: "everything melded", hand: "AS 2S 3S 4S 5S 6S 7S 8S 9S 10S JS", want: 0},
		{name: "first of equal values", hand: "9S 9H 9D 6C 6H KD QS JC 10H 8D 7S", want: 3},
	}
	bot := &BasicBot{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bot.ChooseDiscard(parseHand(t, tt.hand)); got != tt.want {
				t.Errorf("ChooseDiscard() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBasicBot_WantsDiscard(t *testing.T) {
	hand := parseHand(t, "7S 7H 2D 3D 9C JC KS QH 4S 10D")
	bot := &BasicBot{}
	if !bot.WantsDiscard(hand, parseCard(t, "7D")) {
		t.Error("Expected BasicBot to take the card completing a group")
	}
	if bot.WantsDiscard(hand, parseCard(t, "5H")) {
		t.Error("Expected BasicBot to pass on an unrelated card")
	}
}

func TestSmartBot_ChooseDiscard(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want int
	}{
		{name: "keeps a rummy", hand: "4S 4D 4H 4C 3H 6H 5H 5S 5C 5D KD", want: 10},
		{name: "throws the heavier loose card", hand: "2S 3S 4S 6H 6D 6C 9S 9H 9D 8D 5C", want: 9},
		{name: "equal loose cards take the later", hand: "2S 3S 4S 6H 6D 6C 9S 9H 9D KC QD", want: 10},
	}
	bot := &SmartBot{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bot.ChooseDiscard(parseHand(t, tt.hand)); got != tt.want {
				t.Errorf("ChooseDiscard() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSmartBot_WantsDiscard(t *testing.T) {
	hand := parseHand(t, "3H 4H 5H 6D 7D 8D JD JS QS KS")
	bot := &SmartBot{}
	if !bot.WantsDiscard(hand, parseCard(t, "9D")) {
		t.Error("Expected SmartBot to take 9♦, which lets it go rummy")
	}
	if bot.WantsDiscard(hand, parseCard(t, "KC")) {
		t.Error("Expected SmartBot to pass on K♣, which cannot lower its leftover")
	}
}

func TestSmartBot_RejectsUnsearchableHand(t *testing.T) {
	bot := &SmartBot{}
	hand := parseHand(t, "2S 3S 4S")
	if got := bot.ChooseDiscard(hand); got != 2 {
		t.Errorf("ChooseDiscard() = %d, want the last index", got)
	}
	if bot.WantsDiscard(hand, parseCard(t, "5S")) {
		t.Error("Expected SmartBot to pass when the hand cannot be evaluated")
	}
}
