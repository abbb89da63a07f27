package ui_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/ui"
	"github.com/stretchr/testify/require"
)

func init() {
	color.DisableColors()
}

func newPrompter(input string) (*ui.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewPrompter(strings.NewReader(input), ui.NewPrinter(out, 0)), out
}

func TestPromptIntegerInRange(t *testing.T) {
	t.Run("reprompts_until_valid", func(t *testing.T) {
		prompter, out := newPrompter("abc\n9\n2\n")
		value, err := prompter.PromptIntegerInRange(-1, 3, "Which card?")
		require.NoError(t, err)
		require.Equal(t, 2, value)
		require.Contains(t, out.String(), "The input does not appear to be a number.")
		require.Contains(t, out.String(), "Invalid input. Please try again.")
	})

	t.Run("returns_eof_when_input_closes", func(t *testing.T) {
		prompter, _ := newPrompter("x\n")
		_, err := prompter.PromptIntegerInRange(0, 1, "Which card?")
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestPromptPositiveInteger(t *testing.T) {
	prompter, out := newPrompter("0\n-3\n4\n")
	value, err := prompter.PromptPositiveInteger("How many players?")
	require.NoError(t, err)
	require.Equal(t, 4, value)
	require.Equal(t, 2, strings.Count(out.String(), "Not a valid number"))
}

func TestPromptColor(t *testing.T) {
	prompter, out := newPrompter("purple\n  Red \n")
	chosen, err := prompter.PromptColor()
	require.NoError(t, err)
	require.Equal(t, color.Red, chosen)
	require.Contains(t, out.String(), "Invalid color")
}
