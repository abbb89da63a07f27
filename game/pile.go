package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Pile is the discard pile. The last card is on top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// ReplaceTop swaps the top card, used to record the color chosen for a wild card.
func (p *Pile) ReplaceTop(card card.Card) {
	if len(p.cards) == 0 {
		return
	}
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeAllButTop removes every card under the top one and returns them in
// pile order. The top card stays. Wild cards lose the color chosen for them.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return []card.Card{}
	}
	top := p.cards[len(p.cards)-1]
	taken := make([]card.Card, 0, len(p.cards)-1)
	for _, discarded := range p.cards[:len(p.cards)-1] {
		if cardAction, ok := card.ActionOf(discarded); ok && cardAction.Wild() {
			discarded = card.NewActionCard(color.Unset, cardAction)
		}
		taken = append(taken, discarded)
	}
	p.cards = append(p.cards[:0], top)
	return taken
}
