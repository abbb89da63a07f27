package card

import "github.com/ratel-online/uno/card/color"

type RankedCard struct {
	color color.Color
	rank  int
}

func NewRankedCard(color color.Color, rank int) RankedCard {
	return RankedCard{
		color: color,
		rank:  rank,
	}
}

func (c RankedCard) Color() color.Color {
	return c.color
}

func (c RankedCard) Rank() int {
	return c.rank
}

func (c RankedCard) Equal(other Card) bool {
	otherRankedCard, typeMatched := other.(RankedCard)
	return typeMatched && c.color == otherRankedCard.color && c.rank == otherRankedCard.rank
}

func (c RankedCard) String() string {
	return c.color.Paintf("[%d]", c.rank)
}

func (RankedCard) card() {}
