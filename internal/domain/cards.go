package domain

import (
	"fmt"

	"github.com/paulhankin/poker"
)

var cardRanks = map[byte]poker.Rank{
	'A': 1,
	'2': 2,
	'3': 3,
	'4': 4,
	'5': 5,
	'6': 6,
	'7': 7,
	'8': 8,
	'9': 9,
	'T': 10,
	'J': 11,
	'Q': 12,
	'K': 13,
}

var cardSuits = map[byte]poker.Suit{
	'c': poker.Club,
	'd': poker.Diamond,
	'h': poker.Heart,
	's': poker.Spade,
}

// ParseCard parses a two-character card code such as "As", "Td" or "7c"
func ParseCard(code string) (poker.Card, error) {
	var none poker.Card
	if len(code) != 2 {
		return none, fmt.Errorf("invalid card %q: expected rank and suit", code)
	}
	rank, ok := cardRanks[code[0]]
	if !ok {
		return none, fmt.Errorf("invalid card %q: unknown rank", code)
	}
	suit, ok := cardSuits[code[1]]
	if !ok {
		return none, fmt.Errorf("invalid card %q: unknown suit", code)
	}
	return poker.MakeCard(suit, rank)
}

// CardSet tracks the cards already dealt in a hand
type CardSet map[poker.Card]struct{}

// ValidateHoleCards records field errors unless cards is exactly CardsPerPlayer valid codes
// that are not already in dealt. Valid cards are added to dealt.
func ValidateHoleCards(v *ValidationError, field string, cards []string, dealt CardSet) {
	if len(cards) != CardsPerPlayer {
		v.Addf(field, "must contain exactly %d cards", CardsPerPlayer)
		return
	}
	for _, code := range cards {
		card, err := ParseCard(code)
		if err != nil {
			v.Add(field, err.Error())
			continue
		}
		if _, seen := dealt[card]; seen {
			v.Addf(field, "card %s is dealt more than once", code)
			continue
		}
		dealt[card] = struct{}{}
	}
}
