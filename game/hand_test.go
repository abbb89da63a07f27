package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewRankedCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.Equal(t, []card.Card{
		card.NewRankedCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{card.NewWildCard()})
	require.False(t, hand.Empty())
	require.Equal(t, 1, hand.Size())
}

func TestPlayableIndexes(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewRankedCard(color.Blue, 5),
		card.NewRankedCard(color.Green, 8),
		card.NewRankedCard(color.Green, 7),
		card.NewWildCard(),
		card.NewActionCard(color.Yellow, action.Reverse),
		card.NewActionCard(color.Blue, action.DrawTwo),
	})
	lastPlayedCard := card.NewRankedCard(color.Blue, 7)
	require.Equal(t, []int{0, 2, 3, 5}, hand.PlayableIndexes(lastPlayedCard))
}

func TestDiscard(t *testing.T) {
	newHand := func() *game.Hand {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewRankedCard(color.Red, 6),
			card.NewActionCard(color.Yellow, action.Reverse),
			card.NewRankedCard(color.Blue, 2),
		})
		return hand
	}
	top := card.NewRankedCard(color.Blue, 6)

	t.Run("removes_the_card_and_keeps_order", func(t *testing.T) {
		hand := newHand()
		discarded, err := hand.Discard(0, top)
		require.NoError(t, err)
		require.Equal(t, card.NewRankedCard(color.Red, 6), discarded)
		require.Equal(t, []card.Card{
			card.NewActionCard(color.Yellow, action.Reverse),
			card.NewRankedCard(color.Blue, 2),
		}, hand.Cards())
	})

	t.Run("rejects_a_card_that_does_not_match", func(t *testing.T) {
		hand := newHand()
		_, err := hand.Discard(1, top)
		require.ErrorIs(t, err, consts.ErrorsInvalidDiscard)
		require.Equal(t, 3, hand.Size())
	})

	t.Run("rejects_an_index_out_of_range", func(t *testing.T) {
		hand := newHand()
		for _, index := range []int{-1, 3} {
			_, err := hand.Discard(index, top)
			require.ErrorIs(t, err, consts.ErrorsInvalidDiscard)
		}
		require.Equal(t, 3, hand.Size())
	})
}
