package msg

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) GameStarted(players int, deckSize int) string {
	return Sprintfln("%d players, %d cards left in the deck.", players, deckSize)
}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerTurnStarted(playerID int) string {
	return Sprintfln("It is player %d's turn", playerID)
}

func (m MessageWriter) PlayerDrewCard(playerID int) string {
	return Sprintfln("Player %d drew a card!", playerID)
}

func (m MessageWriter) PlayerPlayedCard(playerID int, card card.Card) string {
	return Sprintfln("Player %d played %s!", playerID, card)
}

func (m MessageWriter) CardNotDiscarded(reason string) string {
	return Sprintfln("The card you entered could not be discarded. %s", reason)
}

func (m MessageWriter) DeckReshuffled(recycled int) string {
	return Sprintfln("Shuffled %d discarded cards back into the deck.", recycled)
}

func (m MessageWriter) InsufficientCards(playerID int, needed int, available int) string {
	if needed == 1 {
		return Sprintln("No cards to draw.")
	}
	return Sprintfln("Player %d should draw %d cards but only %d are left, no cards drawn.", playerID, needed, available)
}

func (m MessageWriter) PlayerPickedColor(playerID int, color color.Color) string {
	return Sprintfln("Player %d picked color %s!", playerID, color)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) PlayerTurnSkipped(playerID int) string {
	return Sprintfln("Player %d's turn skipped!", playerID)
}

func (m MessageWriter) PlayerPenalized(playerID int, amount int) string {
	return Sprintfln("Player %d drew %d cards!", playerID, amount)
}

func (m MessageWriter) WinnerFound(playerID int) string {
	return Sprintfln("Player %d won", playerID)
}

func (m MessageWriter) GameAborted(reason string) string {
	return Sprintfln("Game stopped: %s", reason)
}

// Hand lists the cards with the numbers used to discard them. Wild cards
// are shown without a color.
func (m MessageWriter) Hand(hand []card.Card) string {
	lines := []string{"Your current hand is:"}
	for index, handCard := range hand {
		lines = append(lines, fmt.Sprintf("%3d: %s", index+1, describe(handCard)))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) Discard(top card.Card) string {
	return Sprintfln("The current discard is: %s", describe(top))
}

func describe(c card.Card) string {
	switch c := c.(type) {
	case card.RankedCard:
		return fmt.Sprintf("%s (%s %d)", c, c.Color().Name(), c.Rank())
	case card.ActionCard:
		if c.Color() == color.Unset {
			return fmt.Sprintf("%s (%s)", c, c.Action())
		}
		return fmt.Sprintf("%s (%s %s)", c, c.Color().Name(), c.Action())
	default:
		return "none"
	}
}
