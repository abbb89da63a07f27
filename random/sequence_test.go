package random_test

import (
	"testing"

	"github.com/ratel-online/uno/random"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Run("replays_queued_values", func(t *testing.T) {
		sequence := random.NewSequence(3, 1, 4)
		require.Equal(t, 3, sequence.Intn(10))
		require.Equal(t, 1, sequence.Intn(10))
		require.Equal(t, 4, sequence.Intn(10))
		require.Equal(t, 0, sequence.Remaining())
	})

	t.Run("returns_zero_when_exhausted", func(t *testing.T) {
		sequence := random.NewSequence()
		require.Equal(t, 0, sequence.Intn(5))
	})

	t.Run("reduces_values_into_range", func(t *testing.T) {
		sequence := random.NewSequence(7, -1)
		require.Equal(t, 2, sequence.Intn(5))
		require.Equal(t, 4, sequence.Intn(5))
	})

	t.Run("remaining_counts_unused_values", func(t *testing.T) {
		sequence := random.NewSequence(1, 2)
		sequence.Intn(3)
		require.Equal(t, 1, sequence.Remaining())
	})
}

func TestDefaultSourceStaysInRange(t *testing.T) {
	source := random.New()
	for i := 0; i < 100; i++ {
		value := source.Intn(6)
		require.GreaterOrEqual(t, value, 0)
		require.Less(t, value, 6)
	}
	require.Equal(t, 0, source.Intn(0))
}
