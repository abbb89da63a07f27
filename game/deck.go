package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/random"
)

// Deck is the draw pile. Cards are drawn from the end.
type Deck struct {
	cards  []card.Card
	random random.Random
}

func NewDeck(cards []card.Card, random random.Random) *Deck {
	deckCards := make([]card.Card, len(cards))
	copy(deckCards, cards)
	return &Deck{
		cards:  deckCards,
		random: random,
	}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Shuffle() {
	Shuffle(d.cards, d.random)
}

// Draw pops up to amount cards off the end, in the order they were popped.
// It never recycles the discard pile.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, d.pop())
	}
	return cards
}

// DrawOne draws a single card. When the deck is empty every discard except
// the top one is moved back into the deck and shuffled first; recycled is the
// number of cards moved. ErrorsDeckExhausted is returned when neither pile
// can supply a card.
func (d *Deck) DrawOne(pile *Pile) (drawn card.Card, recycled int, err error) {
	if len(d.cards) == 0 {
		if pile.Size() <= 1 {
			return nil, 0, consts.ErrorsDeckExhausted
		}
		recycledCards := pile.TakeAllButTop()
		d.cards = append(d.cards, recycledCards...)
		d.Shuffle()
		recycled = len(recycledCards)
	}
	return d.pop(), recycled, nil
}

// TakeFirstRanked removes the ranked card nearest the front of the deck.
func (d *Deck) TakeFirstRanked() (card.Card, error) {
	for index, candidate := range d.cards {
		if _, isRanked := candidate.(card.RankedCard); isRanked {
			d.cards = append(d.cards[:index], d.cards[index+1:]...)
			return candidate, nil
		}
	}
	return nil, consts.ErrorsNoRankedCard
}

func (d *Deck) pop() card.Card {
	last := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return last
}
