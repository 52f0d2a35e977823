package cmd

import (
	"fmt"

	"github.com/abhisek/batball/internal/config"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the arcade and play interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// peekDBPath resolves the database path without opening it.
func peekDBPath(cmd *cobra.Command) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	p, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return "", fmt.Errorf("resolve DB path: %w", err)
	}
	return p, nil
}
