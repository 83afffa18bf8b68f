package meld

import (
	"strings"
	"testing"

	"rummy/internal/domain"
)

// cards parses space separated short notation, e.g. "4S 4D 10H".
func cards(t *testing.T, s string) []domain.Card {
	t.Helper()
	out, err := domain.ParseCards(strings.Fields(s))
	if err != nil {
		t.Fatalf("bad fixture %q: %v", s, err)
	}
	return out
}

func cardsString(cs []domain.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
