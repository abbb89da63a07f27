package random

import (
	"github.com/ratel-online/core/util/rand"
)

// Random is the only source of nondeterminism in a game.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

type coreRandom struct{}

// New returns the default source, backed by the ratel core rand utilities.
func New() Random {
	return coreRandom{}
}

func (coreRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}
