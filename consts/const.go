package consts

import (
	"errors"
	"time"
)

const (
	// NumRanks is the number of ranked card faces per color, starting at 0.
	NumRanks = 10

	MinPlayers = 1

	DefaultPlayers        = 2
	DefaultCardsPerPlayer = 7

	DrawTwoPenalty      = 2
	WildDrawFourPenalty = 4

	DefaultDelay = 500 * time.Millisecond
)

// Prompt answers understood by the console.
const (
	InputQuit = -1
	InputDraw = 0
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidDiscard  = NewErr(1, false, "Card could not be discarded. ")
	ErrorsDeckExhausted   = NewErr(2, false, "No cards to draw. ")
	ErrorsInvalidColor    = NewErr(3, false, "Invalid color. ")
	ErrorsInputInvalid    = NewErr(4, false, "Input invalid. ")
	ErrorsNoRankedCard    = NewErr(10, true, "No ranked card in deck. ")
	ErrorsNotEnoughCards  = NewErr(11, true, "Not enough cards. ")
	ErrorsPlayersInvalid  = NewErr(12, true, "Player count invalid. ")
	ErrorsCardsInvalid    = NewErr(13, true, "Cards per player invalid. ")
	ErrorsTableInvalid    = NewErr(14, true, "Table invalid. ")
	ErrorsGameOver        = NewErr(15, true, "Game is over. ")
	ErrorsProviderMissing = NewErr(16, true, "Choice provider missing. ")
	ErrorsScriptExhausted = NewErr(17, true, "No more scripted answers. ")
)

// Fatal reports whether err is one of the errors above that stops the game.
func Fatal(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return err != nil
}
