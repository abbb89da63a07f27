package action

import "github.com/ratel-online/uno/consts"

type Action int

const (
	DrawTwo Action = iota + 1
	Reverse
	Skip
	WildDrawFour
	Wild
)

// All lists every action in the order cards are created.
var All = []Action{DrawTwo, Reverse, Skip, WildDrawFour, Wild}

// Wild reports whether a card with this action may be played on anything
// and has its color chosen by the player.
func (a Action) Wild() bool {
	return a == Wild || a == WildDrawFour
}

// Penalty is the number of cards the next player draws, zero for no penalty.
func (a Action) Penalty() int {
	switch a {
	case DrawTwo:
		return consts.DrawTwoPenalty
	case WildDrawFour:
		return consts.WildDrawFourPenalty
	default:
		return 0
	}
}

func (a Action) String() string {
	switch a {
	case DrawTwo:
		return "draw 2"
	case Reverse:
		return "reverse"
	case Skip:
		return "skip"
	case WildDrawFour:
		return "wild draw 4"
	case Wild:
		return "wild"
	default:
		return "unknown"
	}
}

// Symbol is the short form shown on a rendered card.
func (a Action) Symbol() string {
	switch a {
	case DrawTwo:
		return "+2!"
	case Reverse:
		return "<=>"
	case Skip:
		return "(/)"
	case WildDrawFour:
		return "+4!"
	case Wild:
		return "(*)"
	default:
		return "?"
	}
}
