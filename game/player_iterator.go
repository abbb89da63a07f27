package game

import (
	"github.com/awesome-cap/hashmap"
)

// PlayerIterator walks the players in turn order.
type PlayerIterator struct {
	players []*Player
	byID    func(id int) (*Player, bool)
	cycler  *Cycler
}

func newPlayerIterator(count int) *PlayerIterator {
	registry := hashmap.New()
	players := make([]*Player, 0, count)
	for id := 1; id <= count; id++ {
		player := newPlayer(id)
		players = append(players, player)
		registry.Set(int64(id), player)
	}
	return &PlayerIterator{
		players: players,
		byID: func(id int) (*Player, bool) {
			if v, ok := registry.Get(int64(id)); ok {
				return v.(*Player), true
			}
			return nil, false
		},
		cycler: NewCycler(count),
	}
}

func (i *PlayerIterator) GetPlayer(id int) (*Player, bool) {
	return i.byID(id)
}

func (i *PlayerIterator) Current() *Player {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

func (i *PlayerIterator) Direction() Direction {
	return i.cycler.Direction()
}

func (i *PlayerIterator) Count() int {
	return len(i.players)
}

// ForEach visits players in creation order, independent of the turn order.
func (i *PlayerIterator) ForEach(function func(player *Player)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Next() *Player {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}
