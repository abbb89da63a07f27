package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("prompts_for_settings_and_quits", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg := &Config{NoColor: true}
		err := Play(context.Background(), cfg, strings.NewReader("two\n0\n2\n3\n-1\n"), out)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Players)
		assert.Equal(t, 3, cfg.CardsPerPlayer)
		assert.Contains(t, out.String(), "How many players?")
		assert.Contains(t, out.String(), "How many cards for each player?")
		assert.Contains(t, out.String(), "It is player 1's turn")
		assert.Contains(t, out.String(), "Game stopped: player quit")
	})

	t.Run("reports_impossible_settings", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg := &Config{Players: 1, CardsPerPlayer: card.SetSize, NoColor: true}
		err := Play(context.Background(), cfg, strings.NewReader(""), out)
		require.ErrorIs(t, err, consts.ErrorsNotEnoughCards)
		assert.Contains(t, out.String(), "Exiting.")
	})

	t.Run("stops_when_input_ends", func(t *testing.T) {
		cfg := &Config{Players: 2, CardsPerPlayer: 2, NoColor: true}
		err := Play(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestRootCmd(t *testing.T) {
	t.Setenv("UNO_DELAY", "0s")
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("-1\n"))
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--players", "3", "-c", "4", "--no-color"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "It is player 1's turn")
}
