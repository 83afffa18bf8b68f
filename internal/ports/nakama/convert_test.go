package nakama

import (
	"testing"

	"rummy/internal/domain"

	"github.com/tidwall/gjson"
)

func TestCardsFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []domain.Card
		wantErr bool
	}{
		{
			name: "objects",
			raw:  `[{"suit":"♥","rank":"Q","value":12},{"suit":"♦","rank":"10","value":10}]`,
			want: []domain.Card{domain.NewCard(domain.Hearts, domain.Queen), domain.NewCard(domain.Diamonds, 10)},
		},
		{
			name: "letters and lower case",
			raw:  `[{"suit":"s","rank":"a"},{"suit":"C","value":7},{"suit":"H","rank":"T","value":10}]`,
			want: []domain.Card{domain.NewCard(domain.Spades, domain.Ace), domain.NewCard(domain.Clubs, 7), domain.NewCard(domain.Hearts, 10)},
		},
		{
			name: "short notation",
			raw:  `["KS","10♣"]`,
			want: []domain.Card{domain.NewCard(domain.Spades, domain.King), domain.NewCard(domain.Clubs, 10)},
		},
		{
			name: "mismatched rank is kept for validation",
			raw:  `[{"suit":"♠","rank":"Q","value":6}]`,
			want: []domain.Card{{Suit: domain.Spades, Rank: "Q", Value: 6}},
		},
		{name: "empty", raw: `[]`, want: []domain.Card{}},
		{name: "not an array", raw: `{"suit":"♠"}`, wantErr: true},
		{name: "bad element", raw: `[42]`, wantErr: true},
		{name: "bad short card", raw: `["ZZ"]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cardsFromJSON("hand", gjson.Parse(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("cardsFromJSON() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("cardsFromJSON() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("cardsFromJSON() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("card %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCardsFromJSON_Missing(t *testing.T) {
	if _, err := cardsFromJSON("hand", gjson.Get(`{}`, "hand")); err == nil {
		t.Fatal("Expected an error for a missing field")
	}
}

func TestCardFromJSON_UnknownSuitSurvives(t *testing.T) {
	c, err := cardFromJSON(gjson.Parse(`{"suit":"X","rank":"4","value":4}`))
	if err != nil {
		t.Fatalf("cardFromJSON() error: %v", err)
	}
	if err := domain.ValidateCard(c); err == nil {
		t.Fatalf("Expected validation to reject %+v", c)
	}
}
