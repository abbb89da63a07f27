package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/random"
)

type Config struct {
	Players        int
	CardsPerPlayer int
	Provider       ChoiceProvider
	Listener       event.Listener
	Random         random.Random
}

// Table is an explicit arrangement of cards, for resuming a known position.
// Hands are listed in player order; the last discard is on top.
type Table struct {
	Deck      []card.Card
	Discard   []card.Card
	Hands     [][]card.Card
	Active    int
	Direction Direction
}

// TurnResult describes one completed call to PlayTurn.
type TurnResult struct {
	PlayerID  int
	Decision  Decision
	Discarded card.Card
	Status    Status
}

// Outcome is how a game ended: with a winner, or because a player quit.
type Outcome struct {
	Winner *Player
	Quit   bool
	QuitBy int
	Turns  int
}

type Game struct {
	id       string
	players  *PlayerIterator
	deck     *Deck
	pile     *Pile
	provider ChoiceProvider
	events   *event.Emitter
	status   Status
	winnerID int
	total    int
}

// New builds the cards for cfg.Players, shuffles and deals them, and turns
// over the first ranked card of the remaining deck.
func New(cfg Config) (*Game, error) {
	if cfg.Players < consts.MinPlayers {
		return nil, consts.ErrorsPlayersInvalid
	}
	if cfg.CardsPerPlayer <= 0 {
		return nil, consts.ErrorsCardsInvalid
	}
	if cfg.Provider == nil {
		return nil, consts.ErrorsProviderMissing
	}
	if cfg.Random == nil {
		cfg.Random = random.New()
	}

	cards := card.NewFullSet(cfg.Players)
	if cfg.CardsPerPlayer > (len(cards)-1)/cfg.Players {
		return nil, fmt.Errorf("%w%d cards for %d players with %d cards each. ", consts.ErrorsNotEnoughCards, len(cards), cfg.Players, cfg.CardsPerPlayer)
	}

	g := newGame(cfg, newPlayerIterator(cfg.Players), NewDeck(cards, cfg.Random), len(cards))
	g.DealStartingCards(cfg.CardsPerPlayer)
	if err := g.PlayFirstCard(); err != nil {
		log.Error(err)
		return nil, err
	}
	return g, nil
}

// FromTable builds a game from an arranged table instead of a fresh deck.
// cfg.Players and cfg.CardsPerPlayer are ignored.
func FromTable(table Table, cfg Config) (*Game, error) {
	if len(table.Hands) < consts.MinPlayers {
		return nil, consts.ErrorsPlayersInvalid
	}
	if len(table.Discard) == 0 || table.Active < 0 || table.Active >= len(table.Hands) {
		return nil, consts.ErrorsTableInvalid
	}
	if cfg.Provider == nil {
		return nil, consts.ErrorsProviderMissing
	}
	if cfg.Random == nil {
		cfg.Random = random.New()
	}

	players := newPlayerIterator(len(table.Hands))
	total := len(table.Deck) + len(table.Discard)
	for index, hand := range table.Hands {
		players.players[index].AddCards(hand)
		total += len(hand)
	}
	players.cycler.set(table.Active, table.Direction)

	g := newGame(cfg, players, NewDeck(table.Deck, cfg.Random), total)
	for _, discarded := range table.Discard {
		g.pile.Add(discarded)
	}
	return g, nil
}

func newGame(cfg Config, players *PlayerIterator, deck *Deck, total int) *Game {
	return &Game{
		id:       uuid.NewString(),
		players:  players,
		deck:     deck,
		pile:     NewPile(),
		provider: cfg.Provider,
		events:   event.NewEmitter(cfg.Listener),
		status:   StatusAwaitingDecision,
		total:    total,
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) Current() *Player {
	return g.players.Current()
}

func (g *Game) Status() Status {
	return g.status
}

// Winner is nil until the game is over.
func (g *Game) Winner() *Player {
	winner, ok := g.players.GetPlayer(g.winnerID)
	if !ok {
		return nil
	}
	return winner
}

// TotalCards is the number of cards the game started with.
func (g *Game) TotalCards() int {
	return g.total
}

// CardCount counts the cards currently in the deck, the discard pile and every hand.
func (g *Game) CardCount() int {
	count := g.deck.Size() + g.pile.Size()
	g.players.ForEach(func(player *Player) {
		count += player.HandSize()
	})
	return count
}

func (g *Game) DealStartingCards(cardsPerPlayer int) {
	g.deck.Shuffle()
	g.players.ForEach(func(player *Player) {
		player.AddCards(g.deck.Draw(cardsPerPlayer))
	})
}

// PlayFirstCard starts the discard pile. Only a ranked card may start it so
// no action takes effect before the first turn.
func (g *Game) PlayFirstCard() error {
	firstCard, err := g.deck.TakeFirstRanked()
	if err != nil {
		return err
	}
	g.pile.Add(firstCard)

	playerIDs := make([]int, 0, g.players.Count())
	g.players.ForEach(func(player *Player) {
		playerIDs = append(playerIDs, player.ID())
	})
	log.Infof("game %s started, %d players, %d cards\n", g.id, len(playerIDs), g.total)
	g.events.Emit(event.GameStartedPayload{
		GameID:   g.id,
		Players:  playerIDs,
		DeckSize: g.deck.Size(),
	})
	g.events.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	return nil
}

func (g *Game) ExtractState(player *Player) State {
	playerSequence := make([]int, 0, g.players.Count())
	playerHandCounts := make(map[int]int, g.players.Count())

	g.players.ForEach(func(player *Player) {
		playerSequence = append(playerSequence, player.ID())
		playerHandCounts[player.ID()] = player.HandSize()
	})

	return State{
		PlayerID:          player.ID(),
		LastPlayedCard:    g.pile.Top(),
		CurrentPlayerHand: player.Hand(),
		PlayableIndexes:   player.hand.PlayableIndexes(g.pile.Top()),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          g.deck.Size(),
		Direction:         g.players.Direction(),
	}
}

// Run plays turns until someone wins or quits. A provider failure aborts the
// game and is returned.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	turns := 0
	for {
		result, err := g.PlayTurn(ctx)
		if err != nil {
			return Outcome{Turns: turns}, err
		}
		turns++
		switch result.Status {
		case StatusGameOver:
			return Outcome{Winner: g.Winner(), Turns: turns}, nil
		case StatusQuit:
			return Outcome{Quit: true, QuitBy: result.PlayerID, Turns: turns}, nil
		}
	}
}

// PlayTurn plays the turn of the current player: it asks for a decision
// until a valid one arrives, applies it, resolves the discarded card's
// action and passes the turn on.
func (g *Game) PlayTurn(ctx context.Context) (TurnResult, error) {
	if g.status.Terminal() {
		return TurnResult{Status: g.status}, consts.ErrorsGameOver
	}
	player := g.players.Current()
	if err := ctx.Err(); err != nil {
		return g.abort(player, err)
	}

	g.status = StatusAwaitingDecision
	g.events.Emit(event.TurnStartedPayload{PlayerID: player.ID()})

	decision, discarded, err := g.decide(ctx, player)
	if err != nil {
		return g.abort(player, err)
	}
	result := TurnResult{PlayerID: player.ID(), Decision: decision, Discarded: discarded}

	switch decision.Kind() {
	case DecisionQuit:
		g.status = StatusQuit
		log.Infof("game %s stopped, player %d quit\n", g.id, player.ID())
		g.events.Emit(event.GameAbortedPayload{PlayerID: player.ID(), Reason: "player quit"})
		result.Status = g.status
		return result, nil
	case DecisionDraw:
		g.draw(player)
		g.players.Next()
		g.status = StatusTurnComplete
		result.Status = g.status
		return result, nil
	}

	if player.NoCards() {
		g.status = StatusGameOver
		g.winnerID = player.ID()
		log.Infof("game %s won by player %d\n", g.id, player.ID())
		g.events.Emit(event.PlayerWonPayload{PlayerID: player.ID()})
		result.Status = g.status
		return result, nil
	}

	if err := g.PerformCardActions(ctx, player, discarded); err != nil {
		return g.abort(player, err)
	}
	g.status = StatusTurnComplete
	result.Status = g.status
	return result, nil
}

// PerformCardActions resolves the action of a card player just discarded and
// moves the turn on.
func (g *Game) PerformCardActions(ctx context.Context, player *Player, playedCard card.Card) error {
	cardAction, isAction := card.ActionOf(playedCard)
	if !isAction {
		g.players.Next()
		return nil
	}

	switch cardAction {
	case action.Wild, action.WildDrawFour:
		g.status = StatusAwaitingColorChoice
		chosen, err := g.chooseColor(ctx, player)
		if err != nil {
			return err
		}
		g.pile.ReplaceTop(playedCard.(card.ActionCard).Colored(chosen))
		g.events.Emit(event.ColorChosenPayload{PlayerID: player.ID(), Color: chosen})
	case action.Reverse:
		g.players.Reverse()
		g.events.Emit(event.DirectionReversedPayload{Forward: g.players.Direction() == Forward})
	case action.Skip, action.DrawTwo:
	default:
		panic(fmt.Sprintf("unknown action %d", cardAction))
	}

	next := g.players.Next()
	if cardAction == action.Skip {
		g.events.Emit(event.TurnSkippedPayload{PlayerID: next.ID()})
		next = g.players.Next()
	}
	if penalty := cardAction.Penalty(); penalty > 0 {
		g.penalize(next, penalty)
	}
	return nil
}

func (g *Game) decide(ctx context.Context, player *Player) (Decision, card.Card, error) {
	for {
		decision, err := g.provider.RequestDiscard(ctx, g.ExtractState(player))
		if err != nil {
			if consts.Fatal(err) {
				return decision, nil, err
			}
			g.events.Emit(event.InvalidDiscardPayload{PlayerID: player.ID(), Index: decision.Index(), Reason: err.Error()})
			continue
		}
		switch decision.Kind() {
		case DecisionDraw, DecisionQuit:
			return decision, nil, nil
		case DecisionDiscard:
			discarded, err := player.hand.Discard(decision.Index(), g.pile.Top())
			if err != nil {
				g.events.Emit(event.InvalidDiscardPayload{PlayerID: player.ID(), Index: decision.Index(), Reason: err.Error()})
				continue
			}
			g.pile.Add(discarded)
			g.events.Emit(event.CardDiscardedPayload{PlayerID: player.ID(), Card: discarded})
			return decision, discarded, nil
		default:
			g.events.Emit(event.InvalidDiscardPayload{PlayerID: player.ID(), Index: decision.Index(), Reason: consts.ErrorsInputInvalid.Error()})
		}
	}
}

func (g *Game) chooseColor(ctx context.Context, player *Player) (color.Color, error) {
	for {
		chosen, err := g.provider.RequestColor(ctx, g.ExtractState(player))
		if err != nil {
			if consts.Fatal(err) {
				return color.Unset, err
			}
			continue
		}
		if chosen.Valid() {
			return chosen, nil
		}
	}
}

func (g *Game) draw(player *Player) {
	drawn, recycled, err := g.deck.DrawOne(g.pile)
	if recycled > 0 {
		log.Infof("game %s reshuffled %d discarded cards into the deck\n", g.id, recycled)
		g.events.Emit(event.DeckReshuffledPayload{Recycled: recycled})
	}
	if err != nil {
		g.events.Emit(event.InsufficientCardsPayload{PlayerID: player.ID(), Needed: 1, Available: 0})
		return
	}
	player.AddCards([]card.Card{drawn})
	g.events.Emit(event.CardDrawnPayload{PlayerID: player.ID()})
}

// penalize hands amount cards to player only when the deck holds them
// without recycling the discard pile. Otherwise the penalty is forfeited.
func (g *Game) penalize(player *Player, amount int) {
	available := g.deck.Size()
	if available < amount {
		log.Infof("game %s forfeited a %d card penalty for player %d, %d cards in deck\n", g.id, amount, player.ID(), available)
		g.events.Emit(event.InsufficientCardsPayload{PlayerID: player.ID(), Needed: amount, Available: available})
		return
	}
	player.AddCards(g.deck.Draw(amount))
	g.events.Emit(event.CardsPenalizedPayload{PlayerID: player.ID(), Amount: amount})
}

func (g *Game) abort(player *Player, err error) (TurnResult, error) {
	g.status = StatusAborted
	log.Errorf("game %s aborted: %v\n", g.id, err)
	g.events.Emit(event.GameAbortedPayload{PlayerID: player.ID(), Reason: err.Error()})
	return TurnResult{PlayerID: player.ID(), Status: g.status}, err
}
