package game

import (
	"context"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// ChoiceProvider supplies the decisions of whoever is at the table. The
// engine validates every answer and asks again when it is not acceptable.
// A returned consts.Error that does not exit counts as a rejected answer;
// any other error aborts the game.
type ChoiceProvider interface {
	RequestDiscard(ctx context.Context, gameState State) (Decision, error)
	RequestColor(ctx context.Context, gameState State) (color.Color, error)
}

// Player is a seat at the table. Ids start at 1 in creation order.
type Player struct {
	id   int
	hand *Hand
}

func newPlayer(id int) *Player {
	return &Player{
		id:   id,
		hand: NewHand(),
	}
}

func (p *Player) ID() int {
	return p.id
}

func (p *Player) AddCards(cards []card.Card) {
	p.hand.AddCards(cards)
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}
