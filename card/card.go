package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// Card is either a RankedCard or an ActionCard. The set is closed: the
// unexported method keeps other packages from adding variants.
type Card interface {
	Color() color.Color
	Equal(other Card) bool
	String() string
	card()
}

// Wild reports whether c is a wild or wild draw four card.
func Wild(c Card) bool {
	actionCard, ok := c.(ActionCard)
	return ok && actionCard.Action().Wild()
}

// ActionOf returns the action of c, or false for a ranked card.
func ActionOf(c Card) (action.Action, bool) {
	actionCard, ok := c.(ActionCard)
	if !ok {
		return 0, false
	}
	return actionCard.Action(), true
}
