package event

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Event is one of the payload types below.
type Event interface {
	event()
}

type GameStartedPayload struct {
	GameID   string
	Players  []int
	DeckSize int
}

type FirstCardPlayedPayload struct {
	Card card.Card
}

type TurnStartedPayload struct {
	PlayerID int
}

type CardDrawnPayload struct {
	PlayerID int
}

type CardDiscardedPayload struct {
	PlayerID int
	Card     card.Card
}

type InvalidDiscardPayload struct {
	PlayerID int
	Index    int
	Reason   string
}

// DeckReshuffledPayload reports the discards moved back into the deck.
type DeckReshuffledPayload struct {
	Recycled int
}

// InsufficientCardsPayload reports a draw or penalty that could not be
// satisfied. PlayerID is the player who should have received the cards.
type InsufficientCardsPayload struct {
	PlayerID  int
	Needed    int
	Available int
}

type ColorChosenPayload struct {
	PlayerID int
	Color    color.Color
}

type DirectionReversedPayload struct {
	Forward bool
}

type TurnSkippedPayload struct {
	PlayerID int
}

type CardsPenalizedPayload struct {
	PlayerID int
	Amount   int
}

type PlayerWonPayload struct {
	PlayerID int
}

type GameAbortedPayload struct {
	PlayerID int
	Reason   string
}

func (GameStartedPayload) event()       {}
func (FirstCardPlayedPayload) event()   {}
func (TurnStartedPayload) event()       {}
func (CardDrawnPayload) event()         {}
func (CardDiscardedPayload) event()     {}
func (InvalidDiscardPayload) event()    {}
func (DeckReshuffledPayload) event()    {}
func (InsufficientCardsPayload) event() {}
func (ColorChosenPayload) event()       {}
func (DirectionReversedPayload) event() {}
func (TurnSkippedPayload) event()       {}
func (CardsPenalizedPayload) event()    {}
func (PlayerWonPayload) event()         {}
func (GameAbortedPayload) event()       {}
