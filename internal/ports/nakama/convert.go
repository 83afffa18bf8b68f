package nakama

import (
	"fmt"

	"rummy/internal/domain"

	"github.com/tidwall/gjson"
)

// cardsFromJSON reads an array of cards. Each element is either a card object
// {"suit","rank","value"} or short notation such as "QH" or "10♦". Field values are
// not checked here; domain validation reports bad cards with their position.
func cardsFromJSON(field string, r gjson.Result) ([]domain.Card, error) {
	if !r.Exists() {
		return nil, fmt.Errorf("missing %q", field)
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%q must be an array of cards", field)
	}

	var (
		out []domain.Card
		err error
	)
	r.ForEach(func(_, v gjson.Result) bool {
		var c domain.Card
		c, err = cardFromJSON(v)
		if err != nil {
			err = fmt.Errorf("%s[%d]: %w", field, len(out), err)
			return false
		}
		out = append(out, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Card{}
	}
	return out, nil
}

func cardFromJSON(v gjson.Result) (domain.Card, error) {
	switch {
	case v.Type == gjson.String:
		return domain.ParseCard(v.String())
	case v.IsObject():
		c := domain.Card{Rank: v.Get("rank").String()}
		rawSuit := v.Get("suit").String()
		if suit, err := domain.ParseSuit(rawSuit); err == nil {
			c.Suit = suit
		} else {
			c.Suit = domain.Suit(rawSuit)
		}
		value := v.Get("value")
		if value.Exists() {
			c.Value = int(value.Int())
		}
		switch {
		case c.Rank == "":
			// Clients may send the value alone.
			c.Rank = domain.RankLabel(c.Value)
		case !value.Exists():
			n, err := domain.ParseRank(c.Rank)
			if err != nil {
				return domain.Card{}, err
			}
			c.Value, c.Rank = n, domain.RankLabel(n)
		default:
			// Canonicalise "q" or "T"; a rank that disagrees with value is left for validation.
			if n, err := domain.ParseRank(c.Rank); err == nil && n == c.Value {
				c.Rank = domain.RankLabel(n)
			}
		}
		return c, nil
	default:
		return domain.Card{}, fmt.Errorf("card must be an object or a string, got %s", v.Raw)
	}
}
