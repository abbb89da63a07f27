package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Playable reports whether candidateCard may be discarded on lastPlayedCard.
// Wild cards always match. Otherwise the colors must be equal, or both cards
// must be ranked with equal ranks, or both must be non-wild action cards with
// equal actions.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard == nil || lastPlayedCard == nil {
		return false
	}

	switch candidateCard := candidateCard.(type) {
	case card.ActionCard:
		if candidateCard.Action().Wild() {
			return true
		}
		if sameColor(candidateCard, lastPlayedCard) {
			return true
		}
		lastActionCard, isActionCard := lastPlayedCard.(card.ActionCard)
		return isActionCard && !lastActionCard.Action().Wild() && lastActionCard.Action() == candidateCard.Action()
	case card.RankedCard:
		if sameColor(candidateCard, lastPlayedCard) {
			return true
		}
		lastRankedCard, isRankedCard := lastPlayedCard.(card.RankedCard)
		return isRankedCard && lastRankedCard.Rank() == candidateCard.Rank()
	default:
		panic(fmt.Sprintf("unknown card type %T", candidateCard))
	}
}

func sameColor(a, b card.Card) bool {
	return a.Color() != color.Unset && a.Color() == b.Color()
}
