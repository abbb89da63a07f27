package player

import (
	"context"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
)

// Scripted answers from queues filled in advance and remembers every state
// it was shown. Running out of answers is an error.
type Scripted struct {
	decisions     []game.Decision
	colors        []color.Color
	decisionIndex int
	colorIndex    int
	states        []game.State
}

var _ game.ChoiceProvider = (*Scripted)(nil)

func NewScripted() *Scripted {
	return &Scripted{}
}

func (p *Scripted) QueueDecisions(decisions ...game.Decision) *Scripted {
	p.decisions = append(p.decisions, decisions...)
	return p
}

func (p *Scripted) QueueColors(colors ...color.Color) *Scripted {
	p.colors = append(p.colors, colors...)
	return p
}

func (p *Scripted) States() []game.State {
	return p.states
}

func (p *Scripted) Remaining() int {
	return len(p.decisions) - p.decisionIndex + len(p.colors) - p.colorIndex
}

func (p *Scripted) RequestDiscard(ctx context.Context, gameState game.State) (game.Decision, error) {
	if err := ctx.Err(); err != nil {
		return game.Decision{}, err
	}
	p.states = append(p.states, gameState)
	if p.decisionIndex >= len(p.decisions) {
		return game.Decision{}, consts.ErrorsScriptExhausted
	}
	decision := p.decisions[p.decisionIndex]
	p.decisionIndex++
	return decision, nil
}

func (p *Scripted) RequestColor(ctx context.Context, gameState game.State) (color.Color, error) {
	if err := ctx.Err(); err != nil {
		return color.Unset, err
	}
	p.states = append(p.states, gameState)
	if p.colorIndex >= len(p.colors) {
		return color.Unset, consts.ErrorsScriptExhausted
	}
	chosen := p.colors[p.colorIndex]
	p.colorIndex++
	return chosen, nil
}
