package game_test

import (
	"testing"

	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/assert"
)

func TestCycler(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	assert.Equal(t, game.Forward, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, game.Backward, cycler.Direction())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 3, cycler.Current())
}

func TestCyclerSingleSeat(t *testing.T) {
	cycler := game.NewCycler(1)
	assert.Equal(t, 0, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Next())
}
