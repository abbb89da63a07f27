package ui

import (
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/msg"
)

// Console renders game events as text.
type Console struct {
	printer *Printer
}

var _ event.Listener = (*Console)(nil)

func NewConsole(printer *Printer) *Console {
	return &Console{printer: printer}
}

func (c *Console) OnEvent(e event.Event) {
	if text := Render(e); text != "" {
		c.printer.Print(text)
	}
}

// Render returns the text shown for e, or "" for events the table does not need to see.
func Render(e event.Event) string {
	switch e := e.(type) {
	case event.GameStartedPayload:
		return msg.Message.Welcome() + msg.Message.GameStarted(len(e.Players), e.DeckSize)
	case event.FirstCardPlayedPayload:
		return msg.Message.FirstCardPlayed(e.Card)
	case event.TurnStartedPayload:
		return ""
	case event.CardDrawnPayload:
		return msg.Message.PlayerDrewCard(e.PlayerID)
	case event.CardDiscardedPayload:
		return msg.Message.PlayerPlayedCard(e.PlayerID, e.Card)
	case event.InvalidDiscardPayload:
		return msg.Message.CardNotDiscarded(e.Reason)
	case event.DeckReshuffledPayload:
		return msg.Message.DeckReshuffled(e.Recycled)
	case event.InsufficientCardsPayload:
		return msg.Message.InsufficientCards(e.PlayerID, e.Needed, e.Available)
	case event.ColorChosenPayload:
		return msg.Message.PlayerPickedColor(e.PlayerID, e.Color)
	case event.DirectionReversedPayload:
		return msg.Message.TurnOrderReversed()
	case event.TurnSkippedPayload:
		return msg.Message.PlayerTurnSkipped(e.PlayerID)
	case event.CardsPenalizedPayload:
		return msg.Message.PlayerPenalized(e.PlayerID, e.Amount)
	case event.PlayerWonPayload:
		return msg.Message.WinnerFound(e.PlayerID)
	case event.GameAbortedPayload:
		return msg.Message.GameAborted(e.Reason)
	default:
		return ""
	}
}
