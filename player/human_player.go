package player

import (
	"context"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
	"github.com/ratel-online/uno/ui"
)

// Human asks whoever sits at the terminal. Every seat shares the one console.
type Human struct {
	printer  *ui.Printer
	prompter *ui.Prompter
}

var _ game.ChoiceProvider = (*Human)(nil)

func NewHuman(printer *ui.Printer, prompter *ui.Prompter) *Human {
	return &Human{printer: printer, prompter: prompter}
}

func (p *Human) RequestDiscard(ctx context.Context, gameState game.State) (game.Decision, error) {
	if err := ctx.Err(); err != nil {
		return game.Decision{}, err
	}
	p.printer.Print(msg.Message.PlayerTurnStarted(gameState.PlayerID))
	p.printer.Print(msg.Message.Hand(gameState.CurrentPlayerHand))
	p.printer.Print(msg.Message.Discard(gameState.LastPlayedCard))

	selection, err := p.prompter.PromptIntegerInRange(
		consts.InputQuit,
		len(gameState.CurrentPlayerHand),
		"Which card would you like to discard?\nEnter -1 to exit game or 0 to draw a card.",
	)
	if err != nil {
		return game.Decision{}, err
	}
	switch selection {
	case consts.InputQuit:
		return game.Quit(), nil
	case consts.InputDraw:
		return game.Draw(), nil
	default:
		return game.Discard(selection - 1), nil
	}
}

func (p *Human) RequestColor(ctx context.Context, gameState game.State) (color.Color, error) {
	if err := ctx.Err(); err != nil {
		return color.Unset, err
	}
	return p.prompter.PromptColor()
}
