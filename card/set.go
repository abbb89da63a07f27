package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// SetSize is the number of cards NewFullSet creates per repetition.
const SetSize = 4*consts.NumRanks + 4*5

// NewFullSet creates every card of a game, in a fixed order. Each repetition
// holds one ranked card per color and rank and one action card per color and
// action, so the deck grows with the number of repetitions.
func NewFullSet(repetitions int) []Card {
	if repetitions <= 0 {
		return []Card{}
	}
	cards := make([]Card, 0, repetitions*SetSize)
	for i := 0; i < repetitions; i++ {
		for _, cardColor := range color.All {
			cards = append(cards, createRankedCards(cardColor)...)
		}
	}
	for i := 0; i < repetitions; i++ {
		for _, cardColor := range color.All {
			cards = append(cards, createActionCards(cardColor)...)
		}
	}
	return cards
}

func createRankedCards(cardColor color.Color) []Card {
	cards := make([]Card, 0, consts.NumRanks)
	for rank := 0; rank < consts.NumRanks; rank++ {
		cards = append(cards, NewRankedCard(cardColor, rank))
	}
	return cards
}

func createActionCards(cardColor color.Color) []Card {
	cards := make([]Card, 0, len(action.All))
	for _, cardAction := range action.All {
		cards = append(cards, NewActionCard(cardColor, cardAction))
	}
	return cards
}
