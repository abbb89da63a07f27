package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(),
			lastPlayedCard: card.NewRankedCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(),
			lastPlayedCard: card.NewActionCard(color.Red, action.Skip),
			expectedResult: true,
		},
		{
			description:    "wild_card_on_colored_wild_card",
			candidateCard:  card.NewWildCard(),
			lastPlayedCard: card.NewWildDrawFourCard().Colored(color.Green),
			expectedResult: true,
		},
		{
			description:    "ranked_cards_with_same_color",
			candidateCard:  card.NewRankedCard(color.Blue, 5),
			lastPlayedCard: card.NewRankedCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "ranked_cards_with_same_rank",
			candidateCard:  card.NewRankedCard(color.Red, 7),
			lastPlayedCard: card.NewRankedCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "ranked_cards_with_different_color_and_rank",
			candidateCard:  card.NewRankedCard(color.Red, 5),
			lastPlayedCard: card.NewRankedCard(color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "reverse_cards",
			candidateCard:  card.NewActionCard(color.Red, action.Reverse),
			lastPlayedCard: card.NewActionCard(color.Blue, action.Reverse),
			expectedResult: true,
		},
		{
			description:    "skip_cards",
			candidateCard:  card.NewActionCard(color.Red, action.Skip),
			lastPlayedCard: card.NewActionCard(color.Blue, action.Skip),
			expectedResult: true,
		},
		{
			description:    "draw_two_cards",
			candidateCard:  card.NewActionCard(color.Red, action.DrawTwo),
			lastPlayedCard: card.NewActionCard(color.Blue, action.DrawTwo),
			expectedResult: true,
		},
		{
			description:    "action_cards_with_same_color",
			candidateCard:  card.NewActionCard(color.Blue, action.Reverse),
			lastPlayedCard: card.NewActionCard(color.Blue, action.DrawTwo),
			expectedResult: true,
		},
		{
			description:    "action_cards_with_different_color_and_action",
			candidateCard:  card.NewActionCard(color.Red, action.Reverse),
			lastPlayedCard: card.NewActionCard(color.Blue, action.DrawTwo),
			expectedResult: false,
		},
		{
			description:    "ranked_card_then_action_card_with_same_color",
			candidateCard:  card.NewActionCard(color.Blue, action.Reverse),
			lastPlayedCard: card.NewRankedCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "ranked_card_then_action_card_with_different_color",
			candidateCard:  card.NewActionCard(color.Red, action.Reverse),
			lastPlayedCard: card.NewRankedCard(color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "action_card_then_ranked_card_with_same_color",
			candidateCard:  card.NewRankedCard(color.Blue, 7),
			lastPlayedCard: card.NewActionCard(color.Blue, action.Reverse),
			expectedResult: true,
		},
		{
			description:    "action_card_then_ranked_card_with_different_color",
			candidateCard:  card.NewRankedCard(color.Blue, 7),
			lastPlayedCard: card.NewActionCard(color.Red, action.Reverse),
			expectedResult: false,
		},
		{
			description:    "colored_wild_card_then_card_with_same_color",
			candidateCard:  card.NewRankedCard(color.Blue, 7),
			lastPlayedCard: card.NewWildCard().Colored(color.Blue),
			expectedResult: true,
		},
		{
			description:    "colored_wild_card_then_card_with_different_color",
			candidateCard:  card.NewRankedCard(color.Red, 7),
			lastPlayedCard: card.NewWildCard().Colored(color.Blue),
			expectedResult: false,
		},
		{
			description:    "wild_action_does_not_match_by_action",
			candidateCard:  card.NewActionCard(color.Red, action.Skip),
			lastPlayedCard: card.NewWildDrawFourCard().Colored(color.Blue),
			expectedResult: false,
		},
		{
			description:    "uncolored_wild_top_only_accepts_wild_cards",
			candidateCard:  card.NewRankedCard(color.Red, 7),
			lastPlayedCard: card.NewWildCard(),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestRulesOverFullSet(t *testing.T) {
	cards := card.NewFullSet(1)
	for _, candidate := range cards {
		for _, top := range cards {
			expected := card.Wild(candidate) || (candidate.Color() != color.Unset && candidate.Color() == top.Color())
			candidateRanked, candidateIsRanked := candidate.(card.RankedCard)
			topRanked, topIsRanked := top.(card.RankedCard)
			if candidateIsRanked && topIsRanked && candidateRanked.Rank() == topRanked.Rank() {
				expected = true
			}
			candidateAction, candidateIsAction := card.ActionOf(candidate)
			topAction, topIsAction := card.ActionOf(top)
			if candidateIsAction && topIsAction && !topAction.Wild() && candidateAction == topAction {
				expected = true
			}
			require.Equal(t, expected, game.Playable(candidate, top), "%s on %s", candidate, top)
		}
	}
}
