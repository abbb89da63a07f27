package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return nil, false
	}
	return h.cards[index], true
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableIndexes lists the positions of the cards that may be discarded on lastPlayedCard.
func (h *Hand) PlayableIndexes(lastPlayedCard card.Card) []int {
	playableIndexes := make([]int, 0)
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableIndexes = append(playableIndexes, index)
		}
	}
	return playableIndexes
}

// Discard removes the card at index if it may be played on lastPlayedCard.
// The order of the remaining cards is kept.
func (h *Hand) Discard(index int, lastPlayedCard card.Card) (card.Card, error) {
	candidateCard, found := h.Card(index)
	if !found {
		return nil, fmt.Errorf("%wCard %d is not in hand. ", consts.ErrorsInvalidDiscard, index+1)
	}
	if !Playable(candidateCard, lastPlayedCard) {
		return nil, fmt.Errorf("%w%s does not match %s. ", consts.ErrorsInvalidDiscard, candidateCard, lastPlayedCard)
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return candidateCard, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}
