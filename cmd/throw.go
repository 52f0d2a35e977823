package cmd

import (
	"fmt"

	"github.com/abhisek/batball/internal/game"
	"github.com/spf13/cobra"
)

var throwCmd = &cobra.Command{
	Use:       "throw <bat|ball|stump>",
	Short:     "Play a single round from the command line",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bat", "ball", "stump"},
	RunE: func(cmd *cobra.Command, args []string) error {
		move, err := game.ParseMove(args[0])
		if err != nil {
			return err
		}

		s, err := openSession(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := s.ctrl.PlayRound(cmd.Context(), move)
		if err != nil {
			return fmt.Errorf("play round: %w", err)
		}

		printLines(cmd.OutOrStdout(), renderResult(res))
		return nil
	},
}
