package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

type ActionCard struct {
	color  color.Color
	action action.Action
}

// NewActionCard creates an action card. Wild variants always start with an
// unset color regardless of the color passed in.
func NewActionCard(cardColor color.Color, cardAction action.Action) ActionCard {
	if cardAction.Wild() {
		cardColor = color.Unset
	}
	return ActionCard{
		color:  cardColor,
		action: cardAction,
	}
}

func NewWildCard() ActionCard {
	return NewActionCard(color.Unset, action.Wild)
}

func NewWildDrawFourCard() ActionCard {
	return NewActionCard(color.Unset, action.WildDrawFour)
}

func (c ActionCard) Action() action.Action {
	return c.action
}

func (c ActionCard) Color() color.Color {
	return c.color
}

// Colored returns a copy of a wild card carrying the chosen color.
func (c ActionCard) Colored(chosen color.Color) ActionCard {
	c.color = chosen
	return c
}

func (c ActionCard) Equal(other Card) bool {
	otherActionCard, typeMatched := other.(ActionCard)
	return typeMatched && c.color == otherActionCard.color && c.action == otherActionCard.action
}

func (c ActionCard) String() string {
	if c.color == color.Unset {
		return c.action.Symbol()
	}
	return c.color.Paint(c.action.Symbol())
}

func (ActionCard) card() {}
