package game

import "github.com/ratel-online/uno/random"

// Shuffle swaps every position with a position drawn from the whole slice.
// The result is a permutation of the input but not a uniform one; the
// behavior is kept so seeded games replay identically.
func Shuffle[T any](elements []T, random random.Random) {
	for i := range elements {
		j := random.Intn(len(elements))
		elements[i], elements[j] = elements[j], elements[i]
	}
}
