package game

import "fmt"

type DecisionKind int

const (
	DecisionDiscard DecisionKind = iota + 1
	DecisionDraw
	DecisionQuit
)

// Decision is a player's answer to a discard request.
type Decision struct {
	kind  DecisionKind
	index int
}

// Discard plays the card at the zero-based index of the hand.
func Discard(index int) Decision {
	return Decision{kind: DecisionDiscard, index: index}
}

func Draw() Decision {
	return Decision{kind: DecisionDraw}
}

func Quit() Decision {
	return Decision{kind: DecisionQuit}
}

func (d Decision) Kind() DecisionKind {
	return d.kind
}

func (d Decision) Index() int {
	return d.index
}

func (d Decision) String() string {
	switch d.kind {
	case DecisionDiscard:
		return fmt.Sprintf("discard %d", d.index)
	case DecisionDraw:
		return "draw"
	case DecisionQuit:
		return "quit"
	default:
		return "invalid"
	}
}
