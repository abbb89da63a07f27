package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
	"github.com/ratel-online/uno/ui"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "uno",
		Short: "Play Uno at the terminal",
		Long: `uno runs a hot-seat game of Uno for any number of players sharing one terminal.

On your turn enter the number of a card to discard it, 0 to draw a card,
or -1 to leave the game.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Play(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVarP(&cfg.Players, "players", "p", cfg.Players, "Number of players (env: UNO_PLAYERS)")
	rootCmd.Flags().IntVarP(&cfg.CardsPerPlayer, "cards", "c", cfg.CardsPerPlayer, "Cards dealt to each player (env: UNO_CARDS)")
	rootCmd.Flags().DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause after each printed line (env: UNO_DELAY)")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output (env: UNO_NO_COLOR)")

	return rootCmd
}

// Play asks for any missing settings, then runs one game to the end.
func Play(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.NoColor {
		color.DisableColors()
	}

	printer := ui.NewPrinter(out, cfg.Delay)
	prompter := ui.NewPrompter(in, printer)

	var err error
	if cfg.Players <= 0 {
		if cfg.Players, err = prompter.PromptPositiveInteger("How many players?"); err != nil {
			return err
		}
	}
	if cfg.CardsPerPlayer <= 0 {
		if cfg.CardsPerPlayer, err = prompter.PromptPositiveInteger("How many cards for each player?"); err != nil {
			return err
		}
	}

	unoGame, err := game.New(game.Config{
		Players:        cfg.Players,
		CardsPerPlayer: cfg.CardsPerPlayer,
		Provider:       player.NewHuman(printer, prompter),
		Listener:       ui.NewConsole(printer),
	})
	if err != nil {
		printer.Printfln("%s Exiting.", err)
		return err
	}

	outcome, err := unoGame.Run(ctx)
	if err != nil {
		return err
	}
	if outcome.Quit {
		if quitter, ok := unoGame.Players().GetPlayer(outcome.QuitBy); ok {
			log.Infof("player %d left after %d turns holding %d cards\n", quitter.ID(), outcome.Turns, quitter.HandSize())
		}
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(fmt.Errorf("uno: %w", err))
		os.Exit(1)
	}
}
